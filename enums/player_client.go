package enums

type PlayerClient string

const (
	PlayerClientWeb     PlayerClient = "web"
	PlayerClientIOS     PlayerClient = "ios"
	PlayerClientAndroid PlayerClient = "android"
	PlayerClientMWeb    PlayerClient = "mweb"
)

// PlayerClientOrder is the rotation order presented to the source
// platform across consecutive retries.
var PlayerClientOrder = []PlayerClient{
	PlayerClientWeb,
	PlayerClientIOS,
	PlayerClientAndroid,
	PlayerClientMWeb,
}
