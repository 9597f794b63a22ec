package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-mock-backend/entity"
)

// Counts sets how many records the Producer generates per kind. Scopes and
// environments come from fixed tables and are not counted.
type Counts struct {
	Clients   int `json:"clients" yaml:"clients" mapstructure:"clients"`
	Tpps      int `json:"tpps" yaml:"tpps" mapstructure:"tpps"`
	Orgs      int `json:"orgs" yaml:"orgs" mapstructure:"orgs"`
	Relations int `json:"relations" yaml:"relations" mapstructure:"relations"`
}

// DefaultCounts matches the data set frontends are developed against.
func DefaultCounts() Counts {
	return Counts{
		Clients:   15,
		Tpps:      5,
		Orgs:      5,
		Relations: 3,
	}
}

// Producer generates mock records.
type Producer struct {
	counts Counts
	logger *slog.Logger
}

// NewProducer returns a Producer. Negative counts are treated as zero.
func NewProducer(counts Counts, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Producer{counts: counts, logger: logger}
}

// Seed implements store.Seeder.
func (p *Producer) Seed(ctx context.Context) (map[entity.Kind][]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpps := Tpps(p.counts.Tpps)
	orgs := Orgs(p.counts.Orgs)
	clients := Clients(p.counts.Clients)

	out := map[entity.Kind][]entity.Record{
		entity.KindClient:    toRecords(clients),
		entity.KindTpp:       toRecords(tpps),
		entity.KindScope:     toRecords(Scopes()),
		entity.KindOrg:       toRecords(orgs),
		entity.KindTppOrg:    toRecords(TppOrgs(tpps, orgs, p.counts.Relations)),
		entity.KindClientOrg: toRecords(ClientOrgs(clients, orgs, p.counts.Relations)),
		entity.KindEnv:       toRecords(Envs()),
	}

	p.logger.Info("mock data generated",
		"clients", len(out[entity.KindClient]),
		"tpps", len(out[entity.KindTpp]),
		"orgs", len(out[entity.KindOrg]),
	)
	return out, nil
}

func toRecords[T entity.Entity](items []T) []entity.Record {
	out := make([]entity.Record, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToRecord())
	}
	return out
}

// Clients generates clients with ids "1".."count". Names repeat after the
// fifth client so name filters return more than one match.
func Clients(count int) []entity.Client {
	out := make([]entity.Client, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		out = append(out, entity.Client{
			ClientID:     fmt.Sprint(i),
			ClientName:   fmt.Sprintf("Robinshood client %d", min(i, 5)),
			ClientDesc:   fmt.Sprintf("this is testing client %d", i),
			TppID:        "TestAggregator",
			ClientSecret: "123456secret",
			LogoURI:      "http://example.com/logo.png",
			URI:          "http://example.com",
			Contacts:     []string{"zanfu@bofa.com", "haha@bofa.com"},
			Status:       entity.StatusActive,
		})
	}
	return out
}

// Tpps generates TPP1..TPPcount. Even TPPs are active aggregators, odd ones
// inactive processors.
func Tpps(count int) []entity.Tpp {
	out := make([]entity.Tpp, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		tppType, status := "Processor", entity.StatusInactive
		if i%2 == 0 {
			tppType, status = "Aggregator", entity.StatusActive
		}
		out = append(out, entity.Tpp{
			TppID:          fmt.Sprintf("TPP%d", i),
			TppName:        fmt.Sprintf("Test TPP %d", i),
			TppType:        tppType,
			VerifiedClient: fmt.Sprintf("client%d", i),
			ScopeNameList:  "fdx:read fdx:write",
			TppDesc:        fmt.Sprintf("This is test TPP number %d", i),
			ContactName:    fmt.Sprintf("Contact %d", i),
			ContactEmail:   fmt.Sprintf("contact%d@example.com", i),
			Status:         status,
		})
	}
	return out
}

// Scopes returns the fixed FDX scope set.
func Scopes() []entity.Scope {
	return []entity.Scope{
		{ScopeName: "fdx:read", MappingURL: "/api/fdx/read", ScopeDesc: "FDX Read Access Permission"},
		{ScopeName: "fdx:write", MappingURL: "/api/fdx/write", ScopeDesc: "FDX Write Access Permission"},
		{ScopeName: "fdx:admin", MappingURL: "/api/fdx/admin", ScopeDesc: "FDX Admin Access Permission"},
		{ScopeName: "fdx:delete", MappingURL: "/api/fdx/delete", ScopeDesc: "FDX Delete Access Permission"},
	}
}

// Orgs generates ORG1..ORGcount. Every third org is inactive.
func Orgs(count int) []entity.Org {
	out := make([]entity.Org, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		idType := "EIN"
		if i%2 == 0 {
			idType = "SSN"
		}
		status := entity.StatusActive
		if i%3 == 0 {
			status = entity.StatusInactive
		}
		out = append(out, entity.Org{
			OrgID:              fmt.Sprintf("ORG%d", i),
			CustomerIDTypeCode: idType,
			OrgName:            fmt.Sprintf("Organization %d", i),
			OrgDesc:            fmt.Sprintf("This is test organization number %d", i),
			Status:             status,
		})
	}
	return out
}

// TppOrgs pairs the i-th TPP with the i-th org, up to count pairs.
func TppOrgs(tpps []entity.Tpp, orgs []entity.Org, count int) []entity.TppOrg {
	n := min(count, len(tpps), len(orgs))
	out := make([]entity.TppOrg, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, entity.TppOrg{
			TppOrgID: fmt.Sprintf("TPP_ORG_%d", i+1),
			Tpp:      tpps[i],
			Org:      orgs[i],
			Status:   entity.StatusActive,
		})
	}
	return out
}

// ClientOrgs pairs the i-th client with the i-th org, up to count pairs.
func ClientOrgs(clients []entity.Client, orgs []entity.Org, count int) []entity.ClientOrg {
	n := min(count, len(clients), len(orgs))
	out := make([]entity.ClientOrg, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, entity.ClientOrg{
			ClientOrgID: fmt.Sprintf("CLIENT_ORG_%d", i+1),
			Client:      clients[i],
			Org:         orgs[i],
			Status:      entity.StatusActive,
		})
	}
	return out
}

// Envs returns the fixed environment table.
func Envs() []entity.Env {
	return []entity.Env{
		{EnvID: "1", Name: "dev 1", SiteID: "SITE001", StillUsing: true},
		{EnvID: "2", Name: "dev 2", SiteID: "SITE002", StillUsing: true},
		{EnvID: "3", Name: "sit 1", SiteID: "SITE003", StillUsing: false},
		{EnvID: "4", Name: "prod 1", SiteID: "SITE004", StillUsing: true},
	}
}
