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

type MatchResult struct{ ent.Schema }

func (MatchResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "match_results"},
	}
}

func (MatchResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("session_id", uuid.UUID{}),
		// null for records that never resolved to an employee
		field.UUID("employee_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("transaction_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("receipt_id", uuid.UUID{}).Optional().Nillable(),
		field.String("basis").
			Validate(utils.EnumValidator(constants.MatchBases...)),
		field.Time("created_at").Default(time.Now),
	}
}

func (MatchResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("matches").
			Field("session_id").
			Required().
			Unique(),
		edge.From("employee", Employee.Type).
			Ref("matches").
			Field("employee_id").
			Unique(),
	}
}

func (MatchResult) Indexes() []ent.Index {
	return []ent.Index{
		// a transaction or receipt participates in at most one matched row
		index.Fields("transaction_id").Unique(),
		index.Fields("receipt_id").Unique(),
		index.Fields("session_id", "employee_id"),
	}
}
