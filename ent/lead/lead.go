// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldSegment holds the string denoting the segment field in the database.
	FieldSegment = "segment"
	// FieldCompanySize holds the string denoting the company_size field in the database.
	FieldCompanySize = "company_size"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldDiagnosisLevel holds the string denoting the diagnosis_level field in the database.
	FieldDiagnosisLevel = "diagnosis_level"
	// FieldPillarScores holds the string denoting the pillar_scores field in the database.
	FieldPillarScores = "pillar_scores"
	// FieldAiDiagnosis holds the string denoting the ai_diagnosis field in the database.
	FieldAiDiagnosis = "ai_diagnosis"
	// FieldCrmDealID holds the string denoting the crm_deal_id field in the database.
	FieldCrmDealID = "crm_deal_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the lead in the database.
	Table = "leads"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldCompany,
	FieldSegment,
	FieldCompanySize,
	FieldScore,
	FieldAnswers,
	FieldDiagnosisLevel,
	FieldPillarScores,
	FieldAiDiagnosis,
	FieldCrmDealID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPhone holds the default value on creation for the "phone" field.
	DefaultPhone string
	// DefaultCompany holds the default value on creation for the "company" field.
	DefaultCompany string
	// DefaultSegment holds the default value on creation for the "segment" field.
	DefaultSegment string
	// DefaultCompanySize holds the default value on creation for the "company_size" field.
	DefaultCompanySize string
	// DefaultCrmDealID holds the default value on creation for the "crm_deal_id" field.
	DefaultCrmDealID int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// BySegment orders the results by the segment field.
func BySegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegment, opts...).ToFunc()
}

// ByCompanySize orders the results by the company_size field.
func ByCompanySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanySize, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByDiagnosisLevel orders the results by the diagnosis_level field.
func ByDiagnosisLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosisLevel, opts...).ToFunc()
}

// ByCrmDealID orders the results by the crm_deal_id field.
func ByCrmDealID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrmDealID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
