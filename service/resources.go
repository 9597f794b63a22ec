package service

import (
	"strings"

	"github.com/goliatone/go-mock-backend/dao"
	"github.com/goliatone/go-mock-backend/entity"
)

// Resource is where a service is mounted.
type Resource struct {
	// Path is the collection path, e.g. /api/clients.
	Path string
	// BatchParam is the body field carrying ids for batch deletes.
	BatchParam string
}

// Name is the last path segment.
func (r Resource) Name() string {
	return r.Path[strings.LastIndex(r.Path, "/")+1:]
}

// BatchPath is the batch delete path, e.g. /api/clientsBatch.
func (r Resource) BatchPath() string {
	return r.Path + "Batch"
}

var (
	Clients     = Resource{Path: "/api/clients", BatchParam: "clientIds"}
	Tpps        = Resource{Path: "/api/tpps", BatchParam: "tppIds"}
	Orgs        = Resource{Path: "/api/orgs", BatchParam: "orgIds"}
	Scopes      = Resource{Path: "/api/scopes", BatchParam: "scopeNames"}
	ClientOrgs  = Resource{Path: "/api/client_orgs", BatchParam: "clientOrgIds"}
	TppOrgs     = Resource{Path: "/api/tpp_orgs", BatchParam: "tppOrgIds"}
	Environment = Resource{Path: "/api/environment", BatchParam: "envIds"}
)

func NewClients(d dao.DAO, opts ...Option) *Service[entity.Client] {
	return New(d, entity.ClientCodec, Clients, opts...)
}

func NewTpps(d dao.DAO, opts ...Option) *Service[entity.Tpp] {
	return New(d, entity.TppCodec, Tpps, opts...)
}

func NewOrgs(d dao.DAO, opts ...Option) *Service[entity.Org] {
	return New(d, entity.OrgCodec, Orgs, opts...)
}

func NewScopes(d dao.DAO, opts ...Option) *Service[entity.Scope] {
	return New(d, entity.ScopeCodec, Scopes, opts...)
}

func NewClientOrgs(d dao.DAO, opts ...Option) *Service[entity.ClientOrg] {
	return New(d, entity.ClientOrgCodec, ClientOrgs, opts...)
}

func NewTppOrgs(d dao.DAO, opts ...Option) *Service[entity.TppOrg] {
	return New(d, entity.TppOrgCodec, TppOrgs, opts...)
}

func NewEnvironment(d dao.DAO, opts ...Option) *Service[entity.Env] {
	return New(d, entity.EnvCodec, Environment, opts...)
}

// Binding pairs an entity kind with its identifier field.
type Binding struct {
	Kind    entity.Kind
	IDField string
}

// Bindings lists the DAO binding of every resource, in route registration
// order.
func Bindings() []Binding {
	return []Binding{
		{entity.KindClient, entity.ClientCodec.IDField},
		{entity.KindTpp, entity.TppCodec.IDField},
		{entity.KindScope, entity.ScopeCodec.IDField},
		{entity.KindOrg, entity.OrgCodec.IDField},
		{entity.KindClientOrg, entity.ClientOrgCodec.IDField},
		{entity.KindTppOrg, entity.TppOrgCodec.IDField},
		{entity.KindEnv, entity.EnvCodec.IDField},
	}
}

// NewAll builds every resource service from a DAO per kind.
func NewAll(daos map[entity.Kind]dao.DAO, opts ...Option) []RouteProvider {
	return []RouteProvider{
		NewClients(daos[entity.KindClient], opts...),
		NewTpps(daos[entity.KindTpp], opts...),
		NewScopes(daos[entity.KindScope], opts...),
		NewOrgs(daos[entity.KindOrg], opts...),
		NewClientOrgs(daos[entity.KindClientOrg], opts...),
		NewTppOrgs(daos[entity.KindTppOrg], opts...),
		NewEnvironment(daos[entity.KindEnv], opts...),
	}
}
