package entity

// ClientOrg links a client to an organization. Both sides are embedded
// copies, not references: deleting the client leaves the relation intact.
type ClientOrg struct {
	ClientOrgID string `json:"clientOrgId" yaml:"clientOrgId"`
	Client      Client `json:"client" yaml:"client"`
	Org         Org    `json:"org" yaml:"org"`
	Status      Status `json:"status" yaml:"status"`
}

func (c ClientOrg) Kind() Kind { return KindClientOrg }
func (c ClientOrg) ID() string { return c.ClientOrgID }

func (c ClientOrg) ToRecord() Record {
	return Record{
		"clientOrgId": c.ClientOrgID,
		"client":      c.Client.ToRecord(),
		"org":         c.Org.ToRecord(),
		"status":      string(c.Status),
	}
}

func decodeClientOrg(r Record) ClientOrg {
	return ClientOrg{
		ClientOrgID: stringOr(r, "clientOrgId", ""),
		Client:      decodeClient(recordOr(r, "client")),
		Org:         decodeOrg(recordOr(r, "org")),
		Status:      statusOr(r),
	}
}

var ClientOrgCodec = Codec[ClientOrg]{
	Kind:        KindClientOrg,
	IDField:     "clientOrgId",
	GeneratedID: true,
	rules: mapRules(
		optionalString("clientOrgId"),
		optionalRecord("client"),
		optionalRecord("org"),
		optionalStatus(),
	),
	decode: decodeClientOrg,
}

// TppOrg links a TPP to an organization.
type TppOrg struct {
	TppOrgID string `json:"tppOrgId" yaml:"tppOrgId"`
	Tpp      Tpp    `json:"tpp" yaml:"tpp"`
	Org      Org    `json:"org" yaml:"org"`
	Status   Status `json:"status" yaml:"status"`
}

func (t TppOrg) Kind() Kind { return KindTppOrg }
func (t TppOrg) ID() string { return t.TppOrgID }

func (t TppOrg) ToRecord() Record {
	return Record{
		"tppOrgId": t.TppOrgID,
		"tpp":      t.Tpp.ToRecord(),
		"org":      t.Org.ToRecord(),
		"status":   string(t.Status),
	}
}

func decodeTppOrg(r Record) TppOrg {
	return TppOrg{
		TppOrgID: stringOr(r, "tppOrgId", ""),
		Tpp:      decodeTpp(recordOr(r, "tpp")),
		Org:      decodeOrg(recordOr(r, "org")),
		Status:   statusOr(r),
	}
}

var TppOrgCodec = Codec[TppOrg]{
	Kind:        KindTppOrg,
	IDField:     "tppOrgId",
	GeneratedID: true,
	rules: mapRules(
		optionalString("tppOrgId"),
		optionalRecord("tpp"),
		optionalRecord("org"),
		optionalStatus(),
	),
	decode: decodeTppOrg,
}
