package api

import "encoding/json"

// stringOrNumber accepts a JSON string or number and keeps its text form.
// The sheet store holds everything as text, but clients have historically
// sent visit counts both ways.
type stringOrNumber string

func (s *stringOrNumber) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = stringOrNumber(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = stringOrNumber(num.String())
	return nil
}

func (s stringOrNumber) String() string {
	return string(s)
}
