// SPDX-License-Identifier: MIT

// Package metrics holds the names and help strings of every Prometheus
// metric exported by lvfuzzy.
package metrics

const (
	EngineEvaluationsH = "The total number of inference evaluations started"
	EngineEvaluationsN = "lvfuzzy_engine_evaluations"
	EngineRejectedH    = "The total number of evaluations rejected before firing rules, by reason"
	EngineRejectedN    = "lvfuzzy_engine_evaluations_rejected"
	EngineDurationH    = "Wall time of a complete evaluation in seconds"
	EngineDurationN    = "lvfuzzy_engine_evaluation_seconds"

	OutputDefuzzifiedH = "The total number of outputs defuzzified to a crisp value"
	OutputDefuzzifiedN = "lvfuzzy_output_defuzzified"
	OutputEmptyH       = "The total number of outputs whose aggregated region was empty"
	OutputEmptyN       = "lvfuzzy_output_empty_region"

	RuleFiredH = "The total number of rules that fired with nonzero strength"
	RuleFiredN = "lvfuzzy_rule_fired"

	BenchEvaluationsH = "The total number of evaluations completed by the bench command"
	BenchEvaluationsN = "lvfuzzy_bench_evaluations"
)

// Label names.
const (
	LabelOutput = "output"
	LabelReason = "reason"
)

// Rejection reasons.
const (
	ReasonUnbound = "unbound_variable"
	ReasonUnknown = "unknown_variable"
	ReasonInput   = "bad_input"
)
