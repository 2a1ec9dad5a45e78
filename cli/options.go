package cli

// Options defines the command line contract of the datastore CLI.
type Options struct {
	ConfigURL string `short:"f" long:"config" description:"config document URL, optionally suffixed with |<kmsKey> for scy encrypted documents" env:"DATASTORE_CONFIG"`

	URL           string `short:"u" long:"url" description:"store base URL" env:"DATASTORE_URL"`
	ServiceSecret string `long:"service-secret" description:"service secret" env:"DATASTORE_SERVICE_SECRET"`
	ServiceToken  string `long:"service-token" description:"service signing token" env:"DATASTORE_SERVICE_TOKEN"`
	ServiceSlug   string `short:"s" long:"service-slug" description:"service namespace slug" env:"DATASTORE_SERVICE_SLUG"`

	UserID    string `short:"U" long:"user" description:"user identifier" required:"true"`
	UserToken string `short:"t" long:"user-token" description:"per-user encryption token" required:"true"`
	Data      string `short:"d" long:"data" description:"JSON payload for the set operation"`

	Args struct {
		Operation string `positional-arg-name:"operation" description:"get or set" required:"true"`
	} `positional-args:"yes"`
}
