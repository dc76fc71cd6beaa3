// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finops-tools/expense-recon/db/ent/schema"
	"github.com/finops-tools/expense-recon/gen/ent/employee"
	"github.com/finops-tools/expense-recon/gen/ent/employeealias"
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	employeeFields := schema.Employee{}.Fields()
	_ = employeeFields
	// employeeDescName is the schema descriptor for name field.
	employeeDescName := employeeFields[1].Descriptor()
	// employee.NameValidator is a validator for the "name" field. It is called by the builders before save.
	employee.NameValidator = employeeDescName.Validators[0].(func(string) error)
	// employeeDescCreatedAt is the schema descriptor for created_at field.
	employeeDescCreatedAt := employeeFields[2].Descriptor()
	// employee.DefaultCreatedAt holds the default value on creation for the created_at field.
	employee.DefaultCreatedAt = employeeDescCreatedAt.Default.(func() time.Time)
	// employeeDescUpdatedAt is the schema descriptor for updated_at field.
	employeeDescUpdatedAt := employeeFields[3].Descriptor()
	// employee.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	employee.DefaultUpdatedAt = employeeDescUpdatedAt.Default.(func() time.Time)
	// employee.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	employee.UpdateDefaultUpdatedAt = employeeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// employeeDescID is the schema descriptor for id field.
	employeeDescID := employeeFields[0].Descriptor()
	// employee.DefaultID holds the default value on creation for the id field.
	employee.DefaultID = employeeDescID.Default.(func() uuid.UUID)
	employeealiasFields := schema.EmployeeAlias{}.Fields()
	_ = employeealiasFields
	// employeealiasDescAlias is the schema descriptor for alias field.
	employeealiasDescAlias := employeealiasFields[2].Descriptor()
	// employeealias.AliasValidator is a validator for the "alias" field. It is called by the builders before save.
	employeealias.AliasValidator = employeealiasDescAlias.Validators[0].(func(string) error)
	// employeealiasDescConfirmedAt is the schema descriptor for confirmed_at field.
	employeealiasDescConfirmedAt := employeealiasFields[3].Descriptor()
	// employeealias.DefaultConfirmedAt holds the default value on creation for the confirmed_at field.
	employeealias.DefaultConfirmedAt = employeealiasDescConfirmedAt.Default.(func() time.Time)
	// employeealiasDescID is the schema descriptor for id field.
	employeealiasDescID := employeealiasFields[0].Descriptor()
	// employeealias.DefaultID holds the default value on creation for the id field.
	employeealias.DefaultID = employeealiasDescID.Default.(func() uuid.UUID)
	matchresultFields := schema.MatchResult{}.Fields()
	_ = matchresultFields
	// matchresultDescBasis is the schema descriptor for basis field.
	matchresultDescBasis := matchresultFields[5].Descriptor()
	// matchresult.BasisValidator is a validator for the "basis" field. It is called by the builders before save.
	matchresult.BasisValidator = matchresultDescBasis.Validators[0].(func(string) error)
	// matchresultDescCreatedAt is the schema descriptor for created_at field.
	matchresultDescCreatedAt := matchresultFields[6].Descriptor()
	// matchresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	matchresult.DefaultCreatedAt = matchresultDescCreatedAt.Default.(func() time.Time)
	// matchresultDescID is the schema descriptor for id field.
	matchresultDescID := matchresultFields[0].Descriptor()
	// matchresult.DefaultID holds the default value on creation for the id field.
	matchresult.DefaultID = matchresultDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescMerchant is the schema descriptor for merchant field.
	receiptDescMerchant := receiptFields[4].Descriptor()
	// receipt.MerchantValidator is a validator for the "merchant" field. It is called by the builders before save.
	receipt.MerchantValidator = receiptDescMerchant.Validators[0].(func(string) error)
	// receiptDescIsCredit is the schema descriptor for is_credit field.
	receiptDescIsCredit := receiptFields[6].Descriptor()
	// receipt.DefaultIsCredit holds the default value on creation for the is_credit field.
	receipt.DefaultIsCredit = receiptDescIsCredit.Default.(bool)
	// receiptDescIncomplete is the schema descriptor for incomplete field.
	receiptDescIncomplete := receiptFields[7].Descriptor()
	// receipt.DefaultIncomplete holds the default value on creation for the incomplete field.
	receipt.DefaultIncomplete = receiptDescIncomplete.Default.(bool)
	// receiptDescSourceFile is the schema descriptor for source_file field.
	receiptDescSourceFile := receiptFields[9].Descriptor()
	// receipt.SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	receipt.SourceFileValidator = receiptDescSourceFile.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[11].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[1].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// session.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	session.StatusValidator = sessionDescStatus.Validators[0].(func(string) error)
	// sessionDescFileCount is the schema descriptor for file_count field.
	sessionDescFileCount := sessionFields[2].Descriptor()
	// session.DefaultFileCount holds the default value on creation for the file_count field.
	session.DefaultFileCount = sessionDescFileCount.Default.(int)
	// session.FileCountValidator is a validator for the "file_count" field. It is called by the builders before save.
	session.FileCountValidator = sessionDescFileCount.Validators[0].(func(int) error)
	// sessionDescTxCount is the schema descriptor for tx_count field.
	sessionDescTxCount := sessionFields[3].Descriptor()
	// session.DefaultTxCount holds the default value on creation for the tx_count field.
	session.DefaultTxCount = sessionDescTxCount.Default.(int)
	// session.TxCountValidator is a validator for the "tx_count" field. It is called by the builders before save.
	session.TxCountValidator = sessionDescTxCount.Validators[0].(func(int) error)
	// sessionDescReceiptCount is the schema descriptor for receipt_count field.
	sessionDescReceiptCount := sessionFields[4].Descriptor()
	// session.DefaultReceiptCount holds the default value on creation for the receipt_count field.
	session.DefaultReceiptCount = sessionDescReceiptCount.Default.(int)
	// session.ReceiptCountValidator is a validator for the "receipt_count" field. It is called by the builders before save.
	session.ReceiptCountValidator = sessionDescReceiptCount.Validators[0].(func(int) error)
	// sessionDescMatchedCount is the schema descriptor for matched_count field.
	sessionDescMatchedCount := sessionFields[5].Descriptor()
	// session.DefaultMatchedCount holds the default value on creation for the matched_count field.
	session.DefaultMatchedCount = sessionDescMatchedCount.Default.(int)
	// session.MatchedCountValidator is a validator for the "matched_count" field. It is called by the builders before save.
	session.MatchedCountValidator = sessionDescMatchedCount.Validators[0].(func(int) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[8].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[9].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescMerchant is the schema descriptor for merchant field.
	transactionDescMerchant := transactionFields[5].Descriptor()
	// transaction.MerchantValidator is a validator for the "merchant" field. It is called by the builders before save.
	transaction.MerchantValidator = transactionDescMerchant.Validators[0].(func(string) error)
	// transactionDescIsCredit is the schema descriptor for is_credit field.
	transactionDescIsCredit := transactionFields[8].Descriptor()
	// transaction.DefaultIsCredit holds the default value on creation for the is_credit field.
	transaction.DefaultIsCredit = transactionDescIsCredit.Default.(bool)
	// transactionDescIncomplete is the schema descriptor for incomplete field.
	transactionDescIncomplete := transactionFields[9].Descriptor()
	// transaction.DefaultIncomplete holds the default value on creation for the incomplete field.
	transaction.DefaultIncomplete = transactionDescIncomplete.Default.(bool)
	// transactionDescSourceFile is the schema descriptor for source_file field.
	transactionDescSourceFile := transactionFields[10].Descriptor()
	// transaction.SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	transaction.SourceFileValidator = transactionDescSourceFile.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[12].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
