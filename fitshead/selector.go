package fitshead

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ExtKeyKind discriminates the three ways an HDU can be addressed.
type ExtKeyKind int

const (
	// KeyIndex addresses an HDU by its position in the file
	KeyIndex ExtKeyKind = iota
	// KeyName addresses an HDU by its EXTNAME
	KeyName
	// KeyNameVersion addresses an HDU by its (EXTNAME, EXTVER) pair
	KeyNameVersion
)

// ExtKey identifies one HDU inside a FITS file, by position, by bare
// name, or by a name and version pair.
type ExtKey struct {
	Kind    ExtKeyKind
	Index   int
	Name    string
	Version int
}

// IndexKey returns a positional lookup key.
func IndexKey(i int) ExtKey {
	return ExtKey{Kind: KeyIndex, Index: i}
}

// NameKey returns a bare-name lookup key.
func NameKey(name string) ExtKey {
	return ExtKey{Kind: KeyName, Name: name}
}

// NameVersionKey returns a (name, version) lookup key.
func NameVersionKey(name string, version int) ExtKey {
	return ExtKey{Kind: KeyNameVersion, Name: name, Version: version}
}

func (k ExtKey) String() string {
	switch k.Kind {
	case KeyName:
		return k.Name
	case KeyNameVersion:
		return fmt.Sprintf("(%s, %d)", k.Name, k.Version)
	default:
		return strconv.Itoa(k.Index)
	}
}

// MarshalJSON renders the key the way the user gave it: a number for
// positional keys, a string for bare names, a [name, version] pair
// otherwise.
func (k ExtKey) MarshalJSON() ([]byte, error) {
	switch k.Kind {
	case KeyName:
		return json.Marshal(k.Name)
	case KeyNameVersion:
		return json.Marshal([]interface{}{k.Name, k.Version})
	default:
		return json.Marshal(k.Index)
	}
}

// SelectKeys translates a user-supplied extension specifier into the
// ordered list of lookup keys to display. An empty spec selects every
// HDU in file order. A spec that parses as an integer selects that
// position, unvalidated. Otherwise the spec is split on commas: with
// two or more parts the last one is the EXTVER and everything before
// it joins back into the EXTNAME (names may contain commas), and a
// single part is a bare EXTNAME.
func SelectKeys(spec string, numHDUs int) ([]ExtKey, error) {
	if spec == "" {
		keys := make([]ExtKey, numHDUs)
		for i := range keys {
			keys[i] = IndexKey(i)
		}
		return keys, nil
	}

	if idx, err := strconv.Atoi(spec); err == nil {
		return []ExtKey{IndexKey(idx)}, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) > 1 {
		name := strings.Join(parts[:len(parts)-1], ",")
		version, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return nil, ErrMalformedExtSpec.
				WithMessage(fmt.Sprintf("extension specifier %q: version %q is not an integer", spec, parts[len(parts)-1]))
		}
		return []ExtKey{NameVersionKey(name, version)}, nil
	}
	return []ExtKey{NameKey(spec)}, nil
}
