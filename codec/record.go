package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Separator joins the fields of a record.
const Separator = "|"

// TimeLayout is the store timestamp layout, millisecond precision in UTC.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// ErrMalformed is returned by Decode for strings that were not written by
// this package.
var ErrMalformed = errors.New("codec: malformed record")

// Item is a value to store together with its expiry in seconds, counted
// from the moment it is stored.
type Item struct {
	Expiry int64
	Value  Value
}

// Record is a decoded record whose payload has not been materialized yet.
type Record struct {
	StoredAt time.Time
	Expiry   float64
	Type     string
	Value    string
}

// Encode packs item using the current time as the store time.
func Encode(item Item) string {
	return EncodeAt(item, time.Now())
}

// EncodeAt packs item into "<storedAt>|<expiry>|<tag>|<base64 payload>".
func EncodeAt(item Item, now time.Time) string {
	tag, payload := pack(item.Value)
	return strings.Join([]string{
		now.UTC().Format(TimeLayout),
		strconv.FormatInt(item.Expiry, 10),
		tag,
		base64.StdEncoding.EncodeToString([]byte(payload)),
	}, Separator)
}

func pack(v Value) (string, string) {
	switch v.kind {
	case KindString:
		return TagString, v.text
	case KindNumber:
		return TagNumber, FormatNumber(v.number)
	case KindArray:
		return TagArray, joinList(v.list)
	case KindObject:
		payload, err := marshalJSON(v.object)
		if err != nil {
			// Unencodable mappings degrade like any other unsupported shape.
			return TagNull, ""
		}
		return TagObject, string(payload)
	}
	return TagNull, ""
}

// marshalJSON encodes v without HTML escaping or a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// joinList joins elements with ",". Nested sequences are flattened and
// mappings render as "[object Object]", the way Array#join prints them.
func joinList(list []any) string {
	elems := make([]string, len(list))
	for i, e := range list {
		elems[i] = elemText(e)
	}
	return strings.Join(elems, ",")
}

func elemText(e any) string {
	switch t := e.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return FormatNumber(t)
	case bool:
		return strconv.FormatBool(t)
	}

	switch v := FromAny(e); v.kind {
	case KindString:
		return v.text
	case KindNumber:
		return FormatNumber(v.number)
	case KindArray:
		return joinList(v.list)
	case KindObject:
		return "[object Object]"
	}
	if v, ok := e.(Value); ok && v.IsNull() {
		return ""
	}
	return fmt.Sprint(e)
}

// Decode splits raw into its four fields. Only a missing separator is an
// error; every other defect degrades to a zero or NaN field.
func Decode(raw string) (Record, error) {
	if !strings.Contains(raw, Separator) {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	parts := strings.Split(raw, Separator)
	var fields [4]string
	copy(fields[:], parts)

	rec := Record{
		Expiry: ParseNumber(fields[1]),
		Type:   fields[2],
		Value:  decodePayload(fields[3]),
	}
	rec.StoredAt = parseStoredAt(fields[0])
	return rec, nil
}

// parseStoredAt accepts full timestamps and bare dates, which count as
// midnight UTC. Anything else yields the zero time.
func parseStoredAt(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func decodePayload(s string) string {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return string(b)
	}
	if b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
		return string(b)
	}
	return ""
}

// Expired reports whether more than Expiry seconds have passed between
// StoredAt and now. Records with an unreadable timestamp or expiry never
// expire.
func (r Record) Expired(now time.Time) bool {
	if r.StoredAt.IsZero() || math.IsNaN(r.Expiry) || math.IsInf(r.Expiry, 0) {
		return false
	}
	// Millisecond Unix times do not saturate the way time.Duration does.
	elapsed := float64(now.UnixMilli()-r.StoredAt.UnixMilli()) / 1000
	return elapsed > r.Expiry
}

// Materialize turns the payload back into a Value. Arrays re-type every
// element that starts like a number, so a stored "42" comes back as 42.
// Unknown tags produce Null. Under the object tag any JSON document is
// accepted and mapped onto the closest shape; booleans have none and become
// Null. Only malformed JSON is returned as an error.
func Materialize(value, tag string) (Value, error) {
	switch tag {
	case TagString:
		return Text(value), nil
	case TagNumber:
		return Number(ParseNumber(value)), nil
	case TagArray:
		parts := strings.Split(value, ",")
		list := make([]any, len(parts))
		for i, p := range parts {
			if looksNumeric(p) {
				list[i] = ParseNumber(p)
			} else {
				list[i] = p
			}
		}
		return Value{kind: KindArray, list: list}, nil
	case TagObject:
		var doc any
		if err := json.Unmarshal([]byte(value), &doc); err != nil {
			return Null(), fmt.Errorf("codec: decode object payload: %w", err)
		}
		return fromJSON(doc), nil
	}
	return Null(), nil
}

func fromJSON(doc any) Value {
	switch t := doc.(type) {
	case map[string]any:
		return Object(t)
	case []any:
		return Value{kind: KindArray, list: t}
	case string:
		return Text(t)
	case float64:
		return Number(t)
	}
	return Null()
}
