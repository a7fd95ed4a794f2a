package domain

import "fmt"

// StateCode is the closed set of US jurisdiction codes a dealer can be
// registered in. The zero value is StateCodeUnknown, a sentinel that is
// never produced by parsing user input: an unresolvable code is an
// error, not Unknown.
type StateCode int

const (
	StateCodeUnknown StateCode = iota
	StateCodeAL
	StateCodeAK
	StateCodeAZ
	StateCodeAR
	StateCodeCA
	StateCodeCO
	StateCodeCT
	StateCodeDE
	StateCodeDC
	StateCodeFL
	StateCodeGA
	StateCodeHI
	StateCodeID
	StateCodeIL
	StateCodeIN
	StateCodeIA
	StateCodeKS
	StateCodeKY
	StateCodeLA
	StateCodeME
	StateCodeMD
	StateCodeMA
	StateCodeMI
	StateCodeMN
	StateCodeMS
	StateCodeMO
	StateCodeMT
	StateCodeNE
	StateCodeNV
	StateCodeNH
	StateCodeNJ
	StateCodeNM
	StateCodeNY
	StateCodeNC
	StateCodeND
	StateCodeOH
	StateCodeOK
	StateCodeOR
	StateCodePA
	StateCodeRI
	StateCodeSC
	StateCodeSD
	StateCodeTN
	StateCodeTX
	StateCodeUT
	StateCodeVT
	StateCodeVA
	StateCodeWA
	StateCodeWV
	StateCodeWI
	StateCodeWY
)

var stateCodeNames = [...]string{
	StateCodeUnknown: "Unknown",
	StateCodeAL:      "AL",
	StateCodeAK:      "AK",
	StateCodeAZ:      "AZ",
	StateCodeAR:      "AR",
	StateCodeCA:      "CA",
	StateCodeCO:      "CO",
	StateCodeCT:      "CT",
	StateCodeDE:      "DE",
	StateCodeDC:      "DC",
	StateCodeFL:      "FL",
	StateCodeGA:      "GA",
	StateCodeHI:      "HI",
	StateCodeID:      "ID",
	StateCodeIL:      "IL",
	StateCodeIN:      "IN",
	StateCodeIA:      "IA",
	StateCodeKS:      "KS",
	StateCodeKY:      "KY",
	StateCodeLA:      "LA",
	StateCodeME:      "ME",
	StateCodeMD:      "MD",
	StateCodeMA:      "MA",
	StateCodeMI:      "MI",
	StateCodeMN:      "MN",
	StateCodeMS:      "MS",
	StateCodeMO:      "MO",
	StateCodeMT:      "MT",
	StateCodeNE:      "NE",
	StateCodeNV:      "NV",
	StateCodeNH:      "NH",
	StateCodeNJ:      "NJ",
	StateCodeNM:      "NM",
	StateCodeNY:      "NY",
	StateCodeNC:      "NC",
	StateCodeND:      "ND",
	StateCodeOH:      "OH",
	StateCodeOK:      "OK",
	StateCodeOR:      "OR",
	StateCodePA:      "PA",
	StateCodeRI:      "RI",
	StateCodeSC:      "SC",
	StateCodeSD:      "SD",
	StateCodeTN:      "TN",
	StateCodeTX:      "TX",
	StateCodeUT:      "UT",
	StateCodeVT:      "VT",
	StateCodeVA:      "VA",
	StateCodeWA:      "WA",
	StateCodeWV:      "WV",
	StateCodeWI:      "WI",
	StateCodeWY:      "WY",
}

var stateCodeValues = func() map[string]StateCode {
	m := make(map[string]StateCode, len(stateCodeNames))
	for v, name := range stateCodeNames {
		m[name] = StateCode(v)
	}
	return m
}()

// String returns the symbolic name of the code ("TX", "CA", ...).
func (s StateCode) String() string {
	if int(s) < 0 || int(s) >= len(stateCodeNames) {
		return stateCodeNames[StateCodeUnknown]
	}
	return stateCodeNames[s]
}

// ParseStateCode resolves a symbolic name to its StateCode. The second
// return value reports whether the name belongs to the closed set.
// "Unknown" itself resolves (it is a member), but callers that require
// a real jurisdiction should reject it explicitly.
func ParseStateCode(name string) (StateCode, bool) {
	code, ok := stateCodeValues[name]
	return code, ok
}

// MarshalText renders the code by name so JSON output carries "TX", not 44.
func (s StateCode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a symbolic name; unknown names are an error so a
// bad code surfaces as a deserialization failure instead of degrading
// to the Unknown sentinel.
func (s *StateCode) UnmarshalText(text []byte) error {
	code, ok := ParseStateCode(string(text))
	if !ok {
		return fmt.Errorf("unknown state code: %q", string(text))
	}
	*s = code
	return nil
}
