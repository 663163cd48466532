package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SiteCredential holds one encrypted credential record keyed by type.
// Plaintext never touches this table or leaves pkg/crypto.
type SiteCredential struct {
	ent.Schema
}

// Fields of the SiteCredential.
func (SiteCredential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credential_id").
			Unique().
			Immutable(),
		field.String("site_id").
			Immutable(),
		field.Enum("credential_type").
			Values("ssh", "ftp", "wp_admin", "wp_app_password", "api_key", "database", "cpanel"),
		field.Bytes("ciphertext").
			Sensitive(),
		field.Bytes("nonce").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SiteCredential.
func (SiteCredential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("credentials").
			Field("site_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SiteCredential.
func (SiteCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "credential_type"),
	}
}
