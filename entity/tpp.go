package entity

// Tpp is a third party provider.
type Tpp struct {
	TppID          string `json:"tppId" yaml:"tppId"`
	TppName        string `json:"tppName" yaml:"tppName"`
	TppType        string `json:"tppType" yaml:"tppType"`
	VerifiedClient string `json:"verifiedClient" yaml:"verifiedClient"`
	ScopeNameList  string `json:"scopeNameList" yaml:"scopeNameList"`
	TppDesc        string `json:"tppDesc" yaml:"tppDesc"`
	ContactName    string `json:"contactName" yaml:"contactName"`
	ContactEmail   string `json:"contactEmail" yaml:"contactEmail"`
	Status         Status `json:"status" yaml:"status"`
}

func (t Tpp) Kind() Kind { return KindTpp }
func (t Tpp) ID() string { return t.TppID }

func (t Tpp) ToRecord() Record {
	return Record{
		"tppId":          t.TppID,
		"tppName":        t.TppName,
		"tppType":        t.TppType,
		"verifiedClient": t.VerifiedClient,
		"scopeNameList":  t.ScopeNameList,
		"tppDesc":        t.TppDesc,
		"contactName":    t.ContactName,
		"contactEmail":   t.ContactEmail,
		"status":         string(t.Status),
	}
}

func decodeTpp(r Record) Tpp {
	return Tpp{
		TppID:          stringOr(r, "tppId", ""),
		TppName:        stringOr(r, "tppName", ""),
		TppType:        stringOr(r, "tppType", ""),
		VerifiedClient: stringOr(r, "verifiedClient", ""),
		ScopeNameList:  stringOr(r, "scopeNameList", ""),
		TppDesc:        stringOr(r, "tppDesc", ""),
		ContactName:    stringOr(r, "contactName", ""),
		ContactEmail:   stringOr(r, "contactEmail", ""),
		Status:         statusOr(r),
	}
}

var TppCodec = Codec[Tpp]{
	Kind:        KindTpp,
	IDField:     "tppId",
	GeneratedID: true,
	rules: mapRules(
		optionalString("tppId"),
		requiredString("tppName"),
		optionalString("tppType"),
		optionalString("verifiedClient"),
		optionalString("scopeNameList"),
		optionalString("tppDesc"),
		optionalString("contactName"),
		optionalString("contactEmail"),
		optionalStatus(),
	),
	decode: decodeTpp,
}
