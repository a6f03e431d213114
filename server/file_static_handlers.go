package server

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"sync"
)

//go:embed static/*
var staticFiles embed.FS

func StaticFilesFS() fs.FS {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("Failed to create sub filesystem: " + err.Error())
	}
	return subFS
}

// staticAsset is an embedded file with its response headers worked out once.
type staticAsset struct {
	data        []byte
	contentType string
	etag        string
}

var (
	assetsMu sync.RWMutex
	assets   = map[string]*staticAsset{}
)

func loadAsset(name string) (*staticAsset, error) {
	assetsMu.RLock()
	asset, ok := assets[name]
	assetsMu.RUnlock()
	if ok {
		return asset, nil
	}

	data, err := fs.ReadFile(StaticFilesFS(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	ctype := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}

	sum := sha256.Sum256(data)
	asset = &staticAsset{
		data:        data,
		contentType: ctype,
		etag:        `"` + hex.EncodeToString(sum[:8]) + `"`,
	}

	assetsMu.Lock()
	assets[name] = asset
	assetsMu.Unlock()
	return asset, nil
}

// StreamFile writes an embedded static file. A request whose If-None-Match
// carries the current ETag is answered with 304.
func StreamFile(w http.ResponseWriter, r *http.Request, fileName string) error {
	asset, err := loadAsset(fileName)
	if err != nil {
		return err
	}

	w.Header().Set("ETag", asset.etag)
	if r != nil && r.Header.Get("If-None-Match") == asset.etag {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	w.Header().Set("Content-Type", asset.contentType)
	if _, err := w.Write(asset.data); err != nil {
		return fmt.Errorf("failed to write %s content: %w", fileName, err)
	}
	return nil
}
