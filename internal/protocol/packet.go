package protocol

// Packet type codes from the Source RCON protocol. AUTH_RESPONSE and
// EXEC_COMMAND share the value 2; direction disambiguates them.
const (
	TypeResponseValue int32 = 0
	TypeExecCommand   int32 = 2
	TypeAuthResponse  int32 = 2
	TypeAuth          int32 = 3
)

// WrapperSize is the byte count the size field covers beyond the body:
// id (4) + type (4) + the two NUL terminators.
const WrapperSize = 10

// MaxCommandBytes is the protocol's stated ceiling for an outbound
// command body. Servers may truncate or reject anything longer; the
// codec does not enforce it.
const MaxCommandBytes = 4096

// Packet is one RCON wire message in either direction.
type Packet struct {
	// ID is the request/response correlation token. Chosen by the
	// client on requests and echoed by the server, except for a failed
	// auth where the server answers with -1.
	ID int32

	// Type is one of the Type* codes above.
	Type int32

	// Body is the packet text: password, command, or command output.
	Body string
}

// Limits constrains decode/encode memory use.
type Limits struct {
	MaxPacketBytes int32
}

func DefaultLimits() Limits {
	return Limits{MaxPacketBytes: 16 * 1024 * 1024}
}
