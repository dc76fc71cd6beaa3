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
)

type Employee struct{ ent.Schema }

func (Employee) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "employees"},
	}
}

func (Employee) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Employee) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("aliases", EmployeeAlias.Type),
		edge.To("transactions", Transaction.Type),
		edge.To("receipts", Receipt.Type),
		edge.To("matches", MatchResult.Type),
	}
}

// EmployeeAlias maps a normalized raw display name to one employee.
// The unique index on alias is what makes resolution deterministic.
type EmployeeAlias struct{ ent.Schema }

func (EmployeeAlias) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "employee_aliases"},
	}
}

func (EmployeeAlias) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("employee_id", uuid.UUID{}),
		field.String("alias").NotEmpty(),
		field.Time("confirmed_at").Default(time.Now),
	}
}

func (EmployeeAlias) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("employee", Employee.Type).
			Ref("aliases").
			Field("employee_id").
			Required().
			Unique(),
	}
}

func (EmployeeAlias) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alias").Unique(),
		index.Fields("employee_id"),
	}
}
