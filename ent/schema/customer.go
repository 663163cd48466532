package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Customer is the tenant root: owns all downstream rows, referenced by
// every tenant-scoped entity for isolation.
type Customer struct {
	ent.Schema
}

// Fields of the Customer.
func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("customer_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique().
			Immutable().
			Comment("Tenant identity; immutable"),
		field.String("plan").
			Default("free"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Customer.
func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sites", Site.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Customer.
func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
