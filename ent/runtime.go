// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/radarpme/radarpme/ent/lead"
	"github.com/radarpme/radarpme/ent/llmrequestevent"
	"github.com/radarpme/radarpme/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescPhone is the schema descriptor for phone field.
	leadDescPhone := leadFields[2].Descriptor()
	// lead.DefaultPhone holds the default value on creation for the phone field.
	lead.DefaultPhone = leadDescPhone.Default.(string)
	// leadDescCompany is the schema descriptor for company field.
	leadDescCompany := leadFields[3].Descriptor()
	// lead.DefaultCompany holds the default value on creation for the company field.
	lead.DefaultCompany = leadDescCompany.Default.(string)
	// leadDescSegment is the schema descriptor for segment field.
	leadDescSegment := leadFields[4].Descriptor()
	// lead.DefaultSegment holds the default value on creation for the segment field.
	lead.DefaultSegment = leadDescSegment.Default.(string)
	// leadDescCompanySize is the schema descriptor for company_size field.
	leadDescCompanySize := leadFields[5].Descriptor()
	// lead.DefaultCompanySize holds the default value on creation for the company_size field.
	lead.DefaultCompanySize = leadDescCompanySize.Default.(string)
	// leadDescCrmDealID is the schema descriptor for crm_deal_id field.
	leadDescCrmDealID := leadFields[11].Descriptor()
	// lead.DefaultCrmDealID holds the default value on creation for the crm_deal_id field.
	lead.DefaultCrmDealID = leadDescCrmDealID.Default.(int)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[12].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
}
