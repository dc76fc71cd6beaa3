package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/db/ent/schema/utils"
)

type Session struct{ ent.Schema }

func (Session) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sessions"},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("status").
			Default(string(constants.StatusUploading)).
			Validate(utils.EnumValidator(constants.SessionStatuses...)),
		field.Int("file_count").Default(0).NonNegative(),
		field.Int("tx_count").Default(0).NonNegative(),
		field.Int("receipt_count").Default(0).NonNegative(),
		field.Int("matched_count").Default(0).NonNegative(),
		field.String("last_error").Optional().Nillable(),
		field.Strings("warnings").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("expires_at"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transactions", Transaction.Type),
		edge.To("receipts", Receipt.Type),
		edge.To("matches", MatchResult.Type),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "updated_at"),
		index.Fields("expires_at"),
	}
}
