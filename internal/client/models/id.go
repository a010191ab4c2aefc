// Package models defines the NoteVault resources exchanged with the REST API
// and the narrowed response types the client validates at the boundary.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a note or a category. The server sends integers; the client
// also needs the synthetic "all" category, so ids are kept as strings and
// encoded back as numbers whenever they are numeric.
type ID string

// AllCategoryID is the client-side "no filter" category. It is never sent to
// the server.
const AllCategoryID ID = "all"

// AllCategoryTitle is the display title of AllCategoryID.
const AllCategoryTitle = "All"

func (id ID) String() string { return string(id) }

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool { return id == "" }

// IsAll reports whether id is the synthetic "all" category or unset.
func (id ID) IsAll() bool { return id == "" || id == AllCategoryID }

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("id: %q is not an integer", n.String())
	}
	*id = ID(n.String())
	return nil
}
