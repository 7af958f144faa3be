package permission

// unknownStr is the string representation for unknown enum values.
const unknownStr = "unknown"

// Kind is the category of a privileged operation.
type Kind int

const (
	// KindExit is a request to terminate the process.
	KindExit Kind = iota

	// KindExec is a request to start an external command.
	KindExec

	// KindNetworkListen is a request to bind a listening port.
	KindNetworkListen

	// KindNetworkConnect is a request to open an outbound connection.
	KindNetworkConnect

	// KindNetworkAccept is a request to accept an inbound connection.
	KindNetworkAccept

	// KindNetworkMulticast is a request to join a multicast group.
	KindNetworkMulticast

	// KindFileRead is a request to read a filesystem path.
	KindFileRead

	// KindFileWrite is a request to write a filesystem path.
	KindFileWrite

	// KindFileDelete is a request to delete a filesystem path.
	KindFileDelete

	// KindFileLink is a request to create a filesystem link.
	KindFileLink

	// KindPackageAccess is a request to access a package's members.
	KindPackageAccess

	// KindPackageDefine is a request to define types in a package.
	KindPackageDefine

	// KindPropertiesAccess is a request to read or replace the whole
	// process property set.
	KindPropertiesAccess

	// KindPropertyAccess is a request to read a single process property.
	KindPropertyAccess

	// KindThreadAccess is a request to manipulate another thread of
	// execution.
	KindThreadAccess

	// KindLoaderCreate is a request to create a code loader.
	KindLoaderCreate

	// KindFactorySet is a request to replace a process-wide factory.
	KindFactorySet

	// KindSecurityAccess is a request to a named security operation.
	KindSecurityAccess

	// KindReflectionUnlock is a request to suppress visibility checks on
	// one or more non-public members.
	KindReflectionUnlock

	// KindReplacePolicy is a request to replace the active enforcement
	// point.
	KindReplacePolicy
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindExit:
		return "exit"
	case KindExec:
		return "exec"
	case KindNetworkListen:
		return "network_listen"
	case KindNetworkConnect:
		return "network_connect"
	case KindNetworkAccept:
		return "network_accept"
	case KindNetworkMulticast:
		return "network_multicast"
	case KindFileRead:
		return "file_read"
	case KindFileWrite:
		return "file_write"
	case KindFileDelete:
		return "file_delete"
	case KindFileLink:
		return "file_link"
	case KindPackageAccess:
		return "package_access"
	case KindPackageDefine:
		return "package_define"
	case KindPropertiesAccess:
		return "properties_access"
	case KindPropertyAccess:
		return "property_access"
	case KindThreadAccess:
		return "thread_access"
	case KindLoaderCreate:
		return "loader_create"
	case KindFactorySet:
		return "factory_set"
	case KindSecurityAccess:
		return "security_access"
	case KindReflectionUnlock:
		return "reflection_unlock"
	case KindReplacePolicy:
		return "replace_policy"
	default:
		return unknownStr
	}
}

// Request describes one intercepted privileged operation. Only the fields
// relevant to the Kind are populated; the rest stay at their zero values.
type Request struct {
	// Kind is the operation category.
	Kind Kind

	// Target is the kind-specific subject: a path, command, package,
	// property, thread, or factory name.
	Target string

	// Host is the remote host for network operations.
	Host string

	// Port is the local or remote port for network operations.
	Port int

	// Code is the requested status for exit operations.
	Code int

	// Members is the set of non-public members a reflection-unlock
	// request targets.
	Members []Member

	// Caller identifies the type originating a reflection-unlock
	// request. It is the input to the trusted-caller boundary check.
	Caller TypeIdentity
}

// Exit builds a process-termination request.
func Exit(code int) Request {
	return Request{Kind: KindExit, Code: code}
}

// Exec builds an external-command request.
func Exec(command string) Request {
	return Request{Kind: KindExec, Target: command}
}

// NetworkListen builds a port-binding request.
func NetworkListen(port int) Request {
	return Request{Kind: KindNetworkListen, Port: port}
}

// NetworkConnect builds an outbound-connection request.
func NetworkConnect(host string, port int) Request {
	return Request{Kind: KindNetworkConnect, Host: host, Port: port}
}

// NetworkAccept builds an inbound-connection request.
func NetworkAccept(host string, port int) Request {
	return Request{Kind: KindNetworkAccept, Host: host, Port: port}
}

// NetworkMulticast builds a multicast-group request.
func NetworkMulticast(group string) Request {
	return Request{Kind: KindNetworkMulticast, Host: group}
}

// FileRead builds a filesystem read request.
func FileRead(path string) Request {
	return Request{Kind: KindFileRead, Target: path}
}

// FileWrite builds a filesystem write request.
func FileWrite(path string) Request {
	return Request{Kind: KindFileWrite, Target: path}
}

// FileDelete builds a filesystem delete request.
func FileDelete(path string) Request {
	return Request{Kind: KindFileDelete, Target: path}
}

// FileLink builds a filesystem link request.
func FileLink(path string) Request {
	return Request{Kind: KindFileLink, Target: path}
}

// PackageAccess builds a package-access request.
func PackageAccess(name string) Request {
	return Request{Kind: KindPackageAccess, Target: name}
}

// PackageDefine builds a package-definition request.
func PackageDefine(name string) Request {
	return Request{Kind: KindPackageDefine, Target: name}
}

// PropertiesAccess builds a whole-property-set request.
func PropertiesAccess() Request {
	return Request{Kind: KindPropertiesAccess}
}

// PropertyAccess builds a single-property request.
func PropertyAccess(name string) Request {
	return Request{Kind: KindPropertyAccess, Target: name}
}

// ThreadAccess builds a thread-manipulation request.
func ThreadAccess(name string) Request {
	return Request{Kind: KindThreadAccess, Target: name}
}

// LoaderCreate builds a code-loader creation request.
func LoaderCreate() Request {
	return Request{Kind: KindLoaderCreate}
}

// FactorySet builds a factory-replacement request.
func FactorySet(name string) Request {
	return Request{Kind: KindFactorySet, Target: name}
}

// SecurityAccess builds a named security-operation request.
func SecurityAccess(name string) Request {
	return Request{Kind: KindSecurityAccess, Target: name}
}

// ReflectionUnlock builds a request to suppress visibility checks on the
// given members, attributed to the given caller identity.
func ReflectionUnlock(caller TypeIdentity, members ...Member) Request {
	cpy := append([]Member(nil), members...)

	return Request{Kind: KindReflectionUnlock, Caller: caller, Members: cpy}
}

// ReplacePolicy builds a request to replace the active enforcement point.
func ReplacePolicy() Request {
	return Request{Kind: KindReplacePolicy}
}
