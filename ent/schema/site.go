package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Site is a customer-owned website; owns credentials, issues, and
// conversations. Deleting a Site cascades to all child rows.
type Site struct {
	ent.Schema
}

// Fields of the Site.
func (Site) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("site_id").
			Unique().
			Immutable(),
		field.String("customer_id").
			Immutable().
			Comment("Tenant scoping column; every query must filter on this"),
		field.String("url"),
		field.String("name"),
		field.Enum("status").
			Values("active", "inactive", "error").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Site.
func (Site) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("sites").
			Field("customer_id").
			Unique().
			Required().
			Immutable(),
		edge.To("credentials", SiteCredential.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("issues", Issue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Site.
func (Site) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id"),
	}
}
