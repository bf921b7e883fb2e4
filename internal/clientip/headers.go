package clientip

// Unresolved is returned by [Resolve] when no client IP can be taken from the
// request headers.
const Unresolved = "! unable to retrieve ip"

// headerPriority lists the checked headers, highest precedence first.
var headerPriority = [...]string{
	"x-client-ip",
	"x-forwarded-for",
	"cf-connecting-ip",
	"Fastly-Client-Ip",
	"True-Client-Ip",
	"X-Real-IP",
	"X-Cluster-Client-IP",
	"X-Forwarded",
	"host",
}
