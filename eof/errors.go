package eof

// ValidationError is the closed set of outcomes a validation pipeline call
// can produce. The zero value is Success.
type ValidationError int

const (
	Success ValidationError = iota

	// Prefix / version.
	ErrInvalidPrefix
	ErrEOFVersionUnknown

	// Header shape.
	ErrIncompleteSectionSize
	ErrIncompleteSectionNumber
	ErrUnknownSectionID
	ErrZeroSectionSize
	ErrSectionHeadersNotTerminated
	ErrInvalidSectionBodiesSize

	// Section presence / order.
	ErrTypeSectionMissing
	ErrCodeSectionMissing
	ErrDataSectionMissing
	ErrMultipleTypeSections
	ErrMultipleCodeSectionsHeaders
	ErrMultipleDataSections
	ErrMultipleContainerSectionsHeaders
	ErrCodeSectionBeforeTypeSection
	ErrDataSectionBeforeCodeSection
	ErrDataSectionBeforeTypesSection
	ErrContainerSectionBeforeTypeSection
	ErrContainerSectionBeforeCodeSection
	ErrTooManyCodeSections
	ErrInvalidTypeSectionSize
	ErrInvalidFirstSectionType

	// Type / limit.
	ErrMaxStackHeightAboveLimit
	ErrInputsOutputsNumAboveLimit

	// Instruction-level.
	ErrUndefinedInstruction
	ErrTruncatedInstruction
	ErrInvalidRJUMPVCount
	ErrInvalidRJUMPDestination
	ErrNoTerminatingInstruction

	// Stack analysis.
	ErrStackUnderflow
	ErrStackHeightMismatch
	ErrNonEmptyStackOnTerminatingInstruction
	ErrInvalidMaxStackHeight
	ErrUnreachableInstructions
	ErrInvalidCodeSectionIndex

	// Sentinel: a defensive assertion failure. Should never be observed.
	ErrImpossible
)

// errorMessages mirrors evmone's get_error_message: stable, short, lower
// snake_case identifiers, independent of Go's own Error() rendering.
var errorMessages = [...]string{
	Success:                                  "success",
	ErrInvalidPrefix:                         "invalid_prefix",
	ErrEOFVersionUnknown:                     "eof_version_unknown",
	ErrIncompleteSectionSize:                 "incomplete_section_size",
	ErrIncompleteSectionNumber:               "incomplete_section_number",
	ErrUnknownSectionID:                      "unknown_section_id",
	ErrZeroSectionSize:                       "zero_section_size",
	ErrSectionHeadersNotTerminated:           "section_headers_not_terminated",
	ErrInvalidSectionBodiesSize:              "invalid_section_bodies_size",
	ErrTypeSectionMissing:                    "type_section_missing",
	ErrCodeSectionMissing:                    "code_section_missing",
	ErrDataSectionMissing:                    "data_section_missing",
	ErrMultipleTypeSections:                  "multiple_type_sections",
	ErrMultipleCodeSectionsHeaders:           "multiple_code_sections_headers",
	ErrMultipleDataSections:                  "multiple_data_sections",
	ErrMultipleContainerSectionsHeaders:      "multiple_container_sections_headers",
	ErrCodeSectionBeforeTypeSection:          "code_section_before_type_section",
	ErrDataSectionBeforeCodeSection:          "data_section_before_code_section",
	ErrDataSectionBeforeTypesSection:         "data_section_before_types_section",
	ErrContainerSectionBeforeTypeSection:     "container_section_before_type_section",
	ErrContainerSectionBeforeCodeSection:     "container_section_before_code_section",
	ErrTooManyCodeSections:                   "too_many_code_sections",
	ErrInvalidTypeSectionSize:                "invalid_type_section_size",
	ErrInvalidFirstSectionType:               "invalid_first_section_type",
	ErrMaxStackHeightAboveLimit:              "max_stack_height_above_limit",
	ErrInputsOutputsNumAboveLimit:            "inputs_outputs_num_above_limit",
	ErrUndefinedInstruction:                  "undefined_instruction",
	ErrTruncatedInstruction:                  "truncated_instruction",
	ErrInvalidRJUMPVCount:                    "invalid_rjumpv_count",
	ErrInvalidRJUMPDestination:               "invalid_rjump_destination",
	ErrNoTerminatingInstruction:              "no_terminating_instruction",
	ErrStackUnderflow:                        "stack_underflow",
	ErrStackHeightMismatch:                   "stack_height_mismatch",
	ErrNonEmptyStackOnTerminatingInstruction: "non_empty_stack_on_terminating_instruction",
	ErrInvalidMaxStackHeight:                 "invalid_max_stack_height",
	ErrUnreachableInstructions:               "unreachable_instructions",
	ErrInvalidCodeSectionIndex:               "invalid_code_section_index",
	ErrImpossible:                            "impossible",
}

// Error implements the error interface. A Success value is never wrapped in
// an error return by this package; Error() on Success returns "success" so
// every value renders through the same string table.
func (e ValidationError) Error() string {
	if int(e) >= 0 && int(e) < len(errorMessages) {
		return errorMessages[e]
	}
	return "<unknown>"
}

// ErrorMessage returns the stable short identifier for an error kind, per
// the error_message(kind) external interface.
func ErrorMessage(e ValidationError) string {
	return e.Error()
}
