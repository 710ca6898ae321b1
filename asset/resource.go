package asset

import (
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// The Resource class wraps a streamable file or remote Resource.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Resolve pathToResource relative to the location of relTo. Backslashes in
// both paths are treated as directory separators. The base directory is
// everything up to and including the last separator of relTo; if relTo
// contains no separator (or is empty) pathToResource is returned unchanged.
// Paths that define a scheme are never rebased.
func Resolve(pathToResource, relTo string) string {
	pathToResource = strings.Replace(pathToResource, `\`, `/`, -1)
	if relTo == "" || strings.Contains(pathToResource, "://") || strings.HasPrefix(pathToResource, "/") {
		return pathToResource
	}

	base := strings.Replace(relTo, `\`, `/`, -1)
	sepIndex := strings.LastIndex(base, "/")
	if sepIndex == -1 {
		return pathToResource
	}

	return base[:sepIndex+1] + pathToResource
}

// Create a new Resource data stream. If relTo is specified, the path to the
// new Resource is resolved against the directory of relTo.
//
// This function can handle http/https URLs by delegating to the net/http package.
// The caller must make sure to close the returned io.ReadCloser to prevent mem leaks.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	if relTo != nil {
		pathToResource = Resolve(pathToResource, relTo.Path())
	} else {
		pathToResource = strings.Replace(pathToResource, `\`, `/`, -1)
	}

	url, err := url.Parse(pathToResource)
	if err != nil {
		return nil, errors.Wrapf(err, "resource: could not parse '%s'", pathToResource)
	}

	var reader io.ReadCloser
	switch url.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(url.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(url.String())
		if err != nil {
			return nil, errors.Errorf("resource: could not fetch '%s': %s", url.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, errors.Errorf("resource: could not fetch '%s': status %d", url.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, errors.Errorf("resource: unsupported scheme '%s'", url.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        url,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	u, err := url.Parse(strings.Replace(name, `\`, `/`, -1))
	if err != nil {
		u = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: ioutil.NopCloser(source),
		url:        u,
	}
}

// Returns true if err was caused by a missing local file or a remote 404.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	return strings.Contains(err.Error(), "status 404")
}
