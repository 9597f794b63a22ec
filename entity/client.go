package entity

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Status is the lifecycle flag carried by clients, TPPs, orgs and relations.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func statusOr(r Record) Status {
	if s, ok := r.String("status"); ok && Status(s).Valid() {
		return Status(s)
	}
	return StatusActive
}

// Client is an API client registered by a TPP.
type Client struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientName   string   `json:"clientName" yaml:"clientName"`
	ClientDesc   string   `json:"clientDesc" yaml:"clientDesc"`
	TppID        string   `json:"tppId" yaml:"tppId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	LogoURI      string   `json:"logoUri" yaml:"logoUri"`
	URI          string   `json:"uri" yaml:"uri"`
	Contacts     []string `json:"contacts" yaml:"contacts"`
	Status       Status   `json:"status" yaml:"status"`
}

func (c Client) Kind() Kind { return KindClient }
func (c Client) ID() string { return c.ClientID }

func (c Client) ToRecord() Record {
	contacts := c.Contacts
	if contacts == nil {
		contacts = []string{}
	}
	return Record{
		"clientId":     c.ClientID,
		"clientName":   c.ClientName,
		"clientDesc":   c.ClientDesc,
		"tppId":        c.TppID,
		"clientSecret": c.ClientSecret,
		"logoUri":      c.LogoURI,
		"uri":          c.URI,
		"contacts":     append([]string{}, contacts...),
		"status":       string(c.Status),
	}
}

func decodeClient(r Record) Client {
	return Client{
		ClientID:     stringOr(r, "clientId", ""),
		ClientName:   stringOr(r, "clientName", ""),
		ClientDesc:   stringOr(r, "clientDesc", ""),
		TppID:        stringOr(r, "tppId", ""),
		ClientSecret: stringOr(r, "clientSecret", ""),
		LogoURI:      stringOr(r, "logoUri", ""),
		URI:          stringOr(r, "uri", ""),
		Contacts:     stringsOr(r, "contacts"),
		Status:       statusOr(r),
	}
}

// ClientCodec requires every client field to be present.
var ClientCodec = Codec[Client]{
	Kind:    KindClient,
	IDField: "clientId",
	rules: mapRules(
		requiredString("clientId"),
		requiredString("clientName"),
		requiredString("clientDesc"),
		requiredString("tppId"),
		requiredString("clientSecret"),
		requiredString("logoUri"),
		requiredString("uri"),
		validation.Key("contacts", isStringList),
		optionalStatus(),
	),
	decode: decodeClient,
}
