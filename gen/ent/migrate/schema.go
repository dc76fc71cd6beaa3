// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EmployeesColumns holds the columns for the "employees" table.
	EmployeesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EmployeesTable holds the schema information for the "employees" table.
	EmployeesTable = &schema.Table{
		Name:       "employees",
		Columns:    EmployeesColumns,
		PrimaryKey: []*schema.Column{EmployeesColumns[0]},
	}
	// EmployeeAliasesColumns holds the columns for the "employee_aliases" table.
	EmployeeAliasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "alias", Type: field.TypeString},
		{Name: "confirmed_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID},
	}
	// EmployeeAliasesTable holds the schema information for the "employee_aliases" table.
	EmployeeAliasesTable = &schema.Table{
		Name:       "employee_aliases",
		Columns:    EmployeeAliasesColumns,
		PrimaryKey: []*schema.Column{EmployeeAliasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "employee_aliases_employees_aliases",
				Columns:    []*schema.Column{EmployeeAliasesColumns[3]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "employeealias_alias",
				Unique:  true,
				Columns: []*schema.Column{EmployeeAliasesColumns[1]},
			},
			{
				Name:    "employeealias_employee_id",
				Unique:  false,
				Columns: []*schema.Column{EmployeeAliasesColumns[3]},
			},
		},
	}
	// MatchResultsColumns holds the columns for the "match_results" table.
	MatchResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "transaction_id", Type: field.TypeUUID, Nullable: true},
		{Name: "receipt_id", Type: field.TypeUUID, Nullable: true},
		{Name: "basis", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// MatchResultsTable holds the schema information for the "match_results" table.
	MatchResultsTable = &schema.Table{
		Name:       "match_results",
		Columns:    MatchResultsColumns,
		PrimaryKey: []*schema.Column{MatchResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "match_results_employees_matches",
				Columns:    []*schema.Column{MatchResultsColumns[5]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "match_results_sessions_matches",
				Columns:    []*schema.Column{MatchResultsColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matchresult_transaction_id",
				Unique:  true,
				Columns: []*schema.Column{MatchResultsColumns[1]},
			},
			{
				Name:    "matchresult_receipt_id",
				Unique:  true,
				Columns: []*schema.Column{MatchResultsColumns[2]},
			},
			{
				Name:    "matchresult_session_id_employee_id",
				Unique:  false,
				Columns: []*schema.Column{MatchResultsColumns[6], MatchResultsColumns[5]},
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "merchant", Type: field.TypeString},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "text"}},
		{Name: "is_credit", Type: field.TypeBool, Default: false},
		{Name: "incomplete", Type: field.TypeBool, Default: false},
		{Name: "image_ref", Type: field.TypeString, Nullable: true},
		{Name: "source_file", Type: field.TypeString},
		{Name: "source_line", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_employees_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[10]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "receipts_sessions_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_session_id_source_file",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[11], ReceiptsColumns[7]},
			},
			{
				Name:    "receipt_session_id_employee_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[11], ReceiptsColumns[10]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "UPLOADING"},
		{Name: "file_count", Type: field.TypeInt, Default: 0},
		{Name: "tx_count", Type: field.TypeInt, Default: 0},
		{Name: "receipt_count", Type: field.TypeInt, Default: 0},
		{Name: "matched_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[9]},
			},
			{
				Name:    "session_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[10]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "posted_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "merchant", Type: field.TypeString},
		{Name: "group", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "text"}},
		{Name: "is_credit", Type: field.TypeBool, Default: false},
		{Name: "incomplete", Type: field.TypeBool, Default: false},
		{Name: "source_file", Type: field.TypeString},
		{Name: "source_line", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_employees_transactions",
				Columns:    []*schema.Column{TransactionsColumns[11]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "transactions_sessions_transactions",
				Columns:    []*schema.Column{TransactionsColumns[12]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_session_id_source_file",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[12], TransactionsColumns[8]},
			},
			{
				Name:    "transaction_session_id_employee_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[12], TransactionsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EmployeesTable,
		EmployeeAliasesTable,
		MatchResultsTable,
		ReceiptsTable,
		SessionsTable,
		TransactionsTable,
	}
)

func init() {
	EmployeesTable.Annotation = &entsql.Annotation{
		Table: "employees",
	}
	EmployeeAliasesTable.ForeignKeys[0].RefTable = EmployeesTable
	EmployeeAliasesTable.Annotation = &entsql.Annotation{
		Table: "employee_aliases",
	}
	MatchResultsTable.ForeignKeys[0].RefTable = EmployeesTable
	MatchResultsTable.ForeignKeys[1].RefTable = SessionsTable
	MatchResultsTable.Annotation = &entsql.Annotation{
		Table: "match_results",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = EmployeesTable
	ReceiptsTable.ForeignKeys[1].RefTable = SessionsTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
	TransactionsTable.ForeignKeys[0].RefTable = EmployeesTable
	TransactionsTable.ForeignKeys[1].RefTable = SessionsTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
}
