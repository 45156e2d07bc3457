package footballdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var trailingDigits = regexp.MustCompile(`\d+$`)

const (
	relSelf = "self"
	// Records rewritten by other clients carry the self link under "_self".
	relSelfAlt = "_self"
)

// getter is the slice of the gateway that entities depend on.
type getter interface {
	Get(ctx context.Context, r gateway.Request) (json.RawMessage, error)
}

// Entity is the contract shared by every domain object.
type Entity interface {
	// ID returns the identifier taken from the record's self link.
	ID() (int, error)
	// Raw returns a copy of the JSON record backing the entity.
	Raw() json.RawMessage
}

type link struct {
	Href string `json:"href"`
}

// record is the immutable core embedded in every entity: the raw JSON it was
// built from, its decoded _links, and the gateway used to resolve relations.
type record struct {
	gw    getter
	raw   json.RawMessage
	links map[string]link
}

func decodeRecord(gw getter, raw json.RawMessage, payload any) (record, error) {
	owned := append(json.RawMessage(nil), raw...)

	var envelope struct {
		Links map[string]link `json:"_links"`
	}
	if err := jsonAPI.Unmarshal(owned, &envelope); err != nil {
		return record{}, &MalformedRecordError{Reason: "record does not decode", Err: err}
	}
	if err := jsonAPI.Unmarshal(owned, payload); err != nil {
		return record{}, &MalformedRecordError{Reason: "record does not decode", Err: err}
	}
	return record{gw: gw, raw: owned, links: envelope.Links}, nil
}

// ID returns the identifier taken from the record's self link.
func (r record) ID() (int, error) {
	return r.relationID(relSelf)
}

// Raw returns a copy of the JSON record.
func (r record) Raw() json.RawMessage {
	return append(json.RawMessage(nil), r.raw...)
}

func (r record) relationID(rel string) (int, error) {
	href, err := r.href(rel)
	if err != nil {
		return 0, err
	}
	id, err := extractID(href)
	if err != nil {
		return 0, &MalformedRecordError{Relation: rel, Href: href, Reason: "href has no trailing id"}
	}
	return id, nil
}

func (r record) href(rel string) (string, error) {
	if r.links == nil {
		return "", &MalformedRecordError{Relation: rel, Reason: "record has no _links"}
	}
	l, ok := r.links[rel]
	if !ok && rel == relSelf {
		l, ok = r.links[relSelfAlt]
	}
	if !ok || l.Href == "" {
		return "", &MalformedRecordError{Relation: rel, Reason: "link missing"}
	}
	return l.Href, nil
}

// extractID returns the decimal number an href ends with.
func extractID(href string) (int, error) {
	digits := trailingDigits.FindString(href)
	if digits == "" {
		return 0, fmt.Errorf("no trailing digits in %q", href)
	}
	return strconv.Atoi(digits)
}

// decodeList pulls the records out of a collection response, which is either a
// bare array or an object holding the array under key.
func decodeList(body json.RawMessage, key string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return decodeArray(trimmed)
	}

	var envelope map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(trimmed, &envelope); err != nil {
		return nil, &MalformedRecordError{Reason: "response does not decode", Err: err}
	}
	list, ok := envelope[key]
	if !ok {
		return nil, &MalformedRecordError{Reason: fmt.Sprintf("response has no %q list", key)}
	}
	return decodeArray(list)
}

func decodeArray(raw json.RawMessage) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := jsonAPI.Unmarshal(raw, &records); err != nil {
		return nil, &MalformedRecordError{Reason: "list does not decode", Err: err}
	}
	return records, nil
}

// unwrapItem returns body[key] when body is an object carrying key, else body.
func unwrapItem(body json.RawMessage, key string) json.RawMessage {
	if key == "" {
		return body
	}
	var envelope map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(body, &envelope); err != nil {
		return body
	}
	if item, ok := envelope[key]; ok {
		return item
	}
	return body
}

// flexInt accepts numbers that the API sometimes ships as strings ("2015").
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("football-data: %q is not an integer", s)
	}
	*n = flexInt(v)
	return nil
}
