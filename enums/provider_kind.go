package enums

type ProviderKind string

const (
	ProviderKindLocal      ProviderKind = "local"
	ProviderKindRemote     ProviderKind = "remote"
	ProviderKindThirdParty ProviderKind = "thirdparty"
)
