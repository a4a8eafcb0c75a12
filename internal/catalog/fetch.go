// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/whence/internal/platform"
)

// ErrFetchCatalog is returned when a catalog cannot be retrieved.
var ErrFetchCatalog = errors.New("failed to fetch catalog")

// Fetch retrieves a catalog from url using Hashicorp's go-getter syntax,
// then parses and validates it. Local paths are read as they are.
func Fetch(ctx context.Context, url string, host platform.Host) (*Catalog, error) {
	name, data, err := getURL(ctx, url)
	if err != nil {
		return nil, err
	}

	c, err := Parse(name, data, host)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// getURL downloads the directory holding the file named by url into a temporary
// directory and returns the file's name and content.
func getURL(ctx context.Context, url string) (string, []byte, error) {
	if url == "" {
		return "", nil, ErrFetchCatalog
	}

	tmpDir, err := os.MkdirTemp("", "whence-getter-*")
	if err != nil {
		return "", nil, errors.Join(ErrFetchCatalog, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.Join(ErrFetchCatalog, err)
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// go-getter fetches directories, so remote URLs are split into the
	// directory to get and the file to read from it.
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return "", nil, errors.Join(ErrFetchCatalog, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return "", nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetchCatalog, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := cli.Get(ctx, req)
	if err != nil {
		return "", nil, errors.Join(ErrFetchCatalog, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return "", nil, errors.Join(ErrFetchCatalog, err)
	}

	return fileName, data, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// splitFileNameFromGetterURL splits a go-getter URL into the directory URL and the file name.
// Any query string is kept on the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, found := strings.Cut(last, goGetterRefSeparator); found {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	parts[len(parts)-1] = filepath.Dir(last)

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1]
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}

// FetchAll returns the built-in catalog merged with every catalog in urls, in order.
func FetchAll(ctx context.Context, host platform.Host, urls ...string) (*Catalog, error) {
	fetched := make([]*Catalog, 0, len(urls))

	for _, u := range urls {
		c, err := Fetch(ctx, u, host)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", u, err)
		}

		fetched = append(fetched, c)
	}

	return Builtin().Merge(fetched...), nil
}
