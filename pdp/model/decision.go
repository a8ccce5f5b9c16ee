package model

const (
	EffectAllow = "allow"
	EffectDeny  = "deny"
)

type AccessDecision struct {
	Effect     string     `json:"effect"`
	Capability Capability `json:"capability"`
	Reason     string     `json:"reason,omitempty"`
}

func (d AccessDecision) Allowed() bool {
	return d.Effect == EffectAllow
}
