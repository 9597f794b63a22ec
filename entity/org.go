package entity

// Org is a customer organization.
type Org struct {
	OrgID              string `json:"orgId" yaml:"orgId"`
	CustomerIDTypeCode string `json:"customerIdTypeCode" yaml:"customerIdTypeCode"`
	OrgName            string `json:"orgName" yaml:"orgName"`
	OrgDesc            string `json:"orgDesc" yaml:"orgDesc"`
	Status             Status `json:"status" yaml:"status"`
}

func (o Org) Kind() Kind { return KindOrg }
func (o Org) ID() string { return o.OrgID }

func (o Org) ToRecord() Record {
	return Record{
		"orgId":              o.OrgID,
		"customerIdTypeCode": o.CustomerIDTypeCode,
		"orgName":            o.OrgName,
		"orgDesc":            o.OrgDesc,
		"status":             string(o.Status),
	}
}

func decodeOrg(r Record) Org {
	return Org{
		OrgID:              stringOr(r, "orgId", ""),
		CustomerIDTypeCode: stringOr(r, "customerIdTypeCode", ""),
		OrgName:            stringOr(r, "orgName", ""),
		OrgDesc:            stringOr(r, "orgDesc", ""),
		Status:             statusOr(r),
	}
}

var OrgCodec = Codec[Org]{
	Kind:        KindOrg,
	IDField:     "orgId",
	GeneratedID: true,
	rules: mapRules(
		optionalString("orgId"),
		requiredString("orgName"),
		optionalString("customerIdTypeCode"),
		optionalString("orgDesc"),
		optionalStatus(),
	),
	decode: decodeOrg,
}

// Scope is an OAuth scope exposed to TPPs. Scopes are keyed by name.
type Scope struct {
	ScopeName  string `json:"scopeName" yaml:"scopeName"`
	MappingURL string `json:"mappingUrl" yaml:"mappingUrl"`
	ScopeDesc  string `json:"scopeDesc" yaml:"scopeDesc"`
}

func (s Scope) Kind() Kind { return KindScope }
func (s Scope) ID() string { return s.ScopeName }

func (s Scope) ToRecord() Record {
	return Record{
		"scopeName":  s.ScopeName,
		"mappingUrl": s.MappingURL,
		"scopeDesc":  s.ScopeDesc,
	}
}

func decodeScope(r Record) Scope {
	return Scope{
		ScopeName:  stringOr(r, "scopeName", ""),
		MappingURL: stringOr(r, "mappingUrl", ""),
		ScopeDesc:  stringOr(r, "scopeDesc", ""),
	}
}

var ScopeCodec = Codec[Scope]{
	Kind:    KindScope,
	IDField: "scopeName",
	rules: mapRules(
		requiredString("scopeName"),
		optionalString("mappingUrl"),
		optionalString("scopeDesc"),
	),
	decode: decodeScope,
}

// Env describes a deployment environment.
type Env struct {
	EnvID      string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	SiteID     string `json:"siteId" yaml:"siteId"`
	StillUsing bool   `json:"stillUsing" yaml:"stillUsing"`
}

func (e Env) Kind() Kind { return KindEnv }
func (e Env) ID() string { return e.EnvID }

func (e Env) ToRecord() Record {
	return Record{
		"id":         e.EnvID,
		"name":       e.Name,
		"siteId":     e.SiteID,
		"stillUsing": e.StillUsing,
	}
}

func decodeEnv(r Record) Env {
	return Env{
		EnvID:      stringOr(r, "id", ""),
		Name:       stringOr(r, "name", ""),
		SiteID:     stringOr(r, "siteId", ""),
		StillUsing: boolOr(r, "stillUsing", false),
	}
}

var EnvCodec = Codec[Env]{
	Kind:        KindEnv,
	IDField:     "id",
	GeneratedID: true,
	rules: mapRules(
		optionalString("id"),
		requiredString("name"),
		optionalString("siteId"),
		optionalBool("stillUsing"),
	),
	decode: decodeEnv,
}
