// Package geoip resolves the country of a client address from a MaxMind formatted database.
package geoip

import (
	"errors"
	"net/netip"

	"github.com/oschwald/maxminddb-golang/v2"
)

var (
	ErrInvalidIP = errors.New("invalid ip")
	ErrLookup    = errors.New("error trying to lookup address")
	ErrOpen      = errors.New("failed to open geoip database")
)

type Record struct {
	Country struct {
		ISOCode string            `maxminddb:"iso_code"`
		Names   map[string]string `maxminddb:"names"`
	} `maxminddb:"country"`
}

// Reader wraps an opened database. A nil Reader is valid and resolves nothing.
type Reader struct {
	db *maxminddb.Reader
}

// Open loads the database at path. An empty path returns a nil Reader, disabling lookups.
func Open(path string) (*Reader, error) {
	if path == "" {
		return nil, nil //nolint:nilnil
	}

	reader, err := maxminddb.Open(path)
	if err != nil {
		return nil, errors.Join(err, ErrOpen)
	}

	return &Reader{db: reader}, nil
}

func (r *Reader) Lookup(address string) (Record, error) {
	var record Record

	ip, err := netip.ParseAddr(address)
	if err != nil {
		return record, errors.Join(err, ErrInvalidIP)
	}

	if r == nil {
		return record, nil
	}

	if err = r.db.Lookup(ip.Unmap()).Decode(&record); err != nil {
		return record, errors.Join(err, ErrLookup)
	}

	return record, nil
}

// Country returns the ISO code of the address, or an empty string when unknown.
func (r *Reader) Country(address string) string {
	record, err := r.Lookup(address)
	if err != nil {
		return ""
	}

	return record.Country.ISOCode
}

func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	return r.db.Close()
}
