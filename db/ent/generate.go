package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/finops-tools/expense-recon/gen/ent",
			Schema:  "github.com/finops-tools/expense-recon/db/ent/schema",
			// the alias upsert in the employee repository needs sql/upsert
			Features: []gen.Feature{gen.FeatureUpsert},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
