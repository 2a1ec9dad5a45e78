package main

import (
	"log"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/viant/datastore/mockstore"
	"github.com/viant/datastore/token"
)

type options struct {
	Addr         string `short:"a" long:"addr" description:"listen address" default:":8087"`
	ServiceToken string `short:"t" long:"service-token" description:"verify access tokens signed with this token" env:"DATASTORE_SERVICE_TOKEN"`
}

func main() {
	opts := &options{}
	if _, err := flags.ParseArgs(opts, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	var storeOptions []mockstore.Option
	if opts.ServiceToken != "" {
		storeOptions = append(storeOptions, mockstore.WithTokenVerification(token.New(opts.ServiceToken)))
	}
	store := mockstore.New(storeOptions...)
	log.Printf("mock user data store listening on %s", opts.Addr)
	if err := http.ListenAndServe(opts.Addr, store.Handler()); err != nil {
		log.Fatal(err)
	}
}
