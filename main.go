package main

import (
	"os"
	"time"

	"github.com/shu-go/gli"
)

// Version is app version
var Version string

func init() {
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102")
	}
}

var gApp gli.App = gli.NewWith(&globalCmd{})

// exitCode is raised by failing commands; gli prints their errors.
var exitCode int

func failed(err error) error {
	if err != nil {
		exitCode = 1
	}
	return err
}

type globalCmd struct {
	Config    string `cli:"config=FILE" help:"config file (default: ./slack-conv.conf or next to the executable)"`
	TokenFile string `cli:"token-file=FILE" help:"file holding the Slack token (default: TOKEN)"`

	Silent  bool `cli:"silent,s" help:"silence all log output"`
	Quiet   bool `cli:"quiet,q" help:"log warnings and errors only"`
	Verbose bool `cli:"verbose,v" help:"log debug details"`
	Trace   bool `cli:"trace" help:"log every request"`

	NoColor bool `cli:"no-color" help:"do not colorize output"`
}

func main() {
	gApp.Name = "slack-conv"
	gApp.Desc = "list Slack conversations you have access to"
	gApp.Version = Version
	gApp.Usage = `------------
how to start
------------

1. put a Slack user token (xoxp-...) into a file named TOKEN
   (scopes: channels:read, groups:read, im:read, mpim:read, users:read)
2. 'slack-conv ls'
3. 'slack-conv help ls'

-------
 types
-------

public_channel   #channel
private_channel  !channel
mpim             &member, &member, ...
im               @user
`
	gApp.Copyright = "(C) 2020 Shuhei Kubota"
	gApp.Run(os.Args)

	os.Exit(exitCode)
}
