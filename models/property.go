package models

import "time"

// Property status values.
const (
	StatusAvailable = "Available"
	StatusRented    = "Rented"
)

// Listing types. Price reads as rent/month for Rent and total for Sale.
const (
	ListingRent = "Rent"
	ListingSale = "Sale"
)

type Property struct {
	ID            int       `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Location      string    `bson:"location" json:"location"`
	Price         float64   `bson:"price" json:"price"`
	Type          string    `bson:"type" json:"type"`
	BHK           string    `bson:"bhk" json:"bhk"`
	Area          float64   `bson:"area" json:"area"`
	Images        []string  `bson:"images" json:"images"`
	VideoURL      string    `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Featured      bool      `bson:"featured,omitempty" json:"featured,omitempty"`
	Status        string    `bson:"status" json:"status"`
	ListingType   string    `bson:"listingType" json:"listingType"`
	Amenities     []string  `bson:"amenities" json:"amenities"`
	Description   string    `bson:"description" json:"description"`
	OwnerName     string    `bson:"ownerName" json:"ownerName"`
	OwnerPhone    string    `bson:"ownerPhone" json:"ownerPhone"`
	OwnerID       string    `bson:"ownerId" json:"ownerId"`
	AdminApproved bool      `bson:"adminApproved" json:"adminApproved"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PropertyDraft is the shape accepted on creation. The store assigns ID and
// CreatedAt.
type PropertyDraft struct {
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	Price         float64  `json:"price"`
	Type          string   `json:"type"`
	BHK           string   `json:"bhk"`
	Area          float64  `json:"area"`
	Images        []string `json:"images"`
	VideoURL      string   `json:"videoUrl,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
	Status        string   `json:"status"`
	ListingType   string   `json:"listingType"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	OwnerName     string   `json:"ownerName"`
	OwnerPhone    string   `json:"ownerPhone"`
	OwnerID       string   `json:"ownerId"`
	AdminApproved bool     `json:"adminApproved"`
}

// PropertyPatch is a partial update. Nil fields are left untouched; set
// fields overwrite. Slice fields (Images, Amenities) replace the stored
// value wholesale, never merge element-wise.
type PropertyPatch struct {
	Title         *string  `json:"title,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Type          *string  `json:"type,omitempty"`
	BHK           *string  `json:"bhk,omitempty"`
	Area          *float64 `json:"area,omitempty"`
	Images        []string `json:"images,omitempty"`
	VideoURL      *string  `json:"videoUrl,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	Status        *string  `json:"status,omitempty"`
	ListingType   *string  `json:"listingType,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Description   *string  `json:"description,omitempty"`
	OwnerName     *string  `json:"ownerName,omitempty"`
	OwnerPhone    *string  `json:"ownerPhone,omitempty"`
	AdminApproved *bool    `json:"adminApproved,omitempty"`
}

// Apply merges the patch into p field by field.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.BHK != nil {
		p.BHK = *patch.BHK
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	if patch.VideoURL != nil {
		p.VideoURL = *patch.VideoURL
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ListingType != nil {
		p.ListingType = *patch.ListingType
	}
	if patch.Amenities != nil {
		p.Amenities = patch.Amenities
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.OwnerName != nil {
		p.OwnerName = *patch.OwnerName
	}
	if patch.OwnerPhone != nil {
		p.OwnerPhone = *patch.OwnerPhone
	}
	if patch.AdminApproved != nil {
		p.AdminApproved = *patch.AdminApproved
	}
}
