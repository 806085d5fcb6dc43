package config

import (
	"fmt"
	"log"
	"os"

	"github.com/estatedesk/property_marketplace/backend/store"
)

// NewBlob picks the persistence backend from STORE_BACKEND: "mongo" (one
// blob document), "file" (one JSON file, the default) or "memory" (demo
// mode, state lost on restart). The returned cleanup closes whatever the
// backend opened.
func NewBlob() (store.Blob, func(), error) {
	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = "file"
	}

	switch backend {
	case "memory":
		return store.NewMemoryBlob(), func() {}, nil

	case "file":
		path := os.Getenv("STORE_FILE")
		if path == "" {
			path = "properties.json"
		}
		log.Printf("Using file store at %s", path)
		return store.NewFileBlob(path), func() {}, nil

	case "mongo":
		client, err := ConnectDB()
		if err != nil {
			return nil, nil, err
		}
		blob := store.NewMongoBlob(PropertiesCollection(client))
		return blob, func() { CloseDBConnection(client) }, nil
	}

	return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
}
