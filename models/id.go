package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// ID is a backend record id. The backend issues numeric ids but the
// portal only ever compares and echoes them, so they travel as strings.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) MarshalJSON() ([]byte, error) {
	// Only the canonical form is a JSON number; "007" and "+5" are not.
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Number is a numeric form field (fee, amount). It keeps the user's
// text so a failed submit can re-render it untouched, and is sent to
// the backend as a JSON number.
type Number string

func (n Number) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	f, err := n.Float()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(string(n))
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var id ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = Number(id)
	return nil
}
