// opensock opens a raw AF_PACKET socket joined to the zappi hardware
// multicast group and replaces itself with a child process that inherits
// the socket at fd 42. Only this binary needs CAP_NET_RAW; the child
// runs unprivileged.
package main

import "github.com/divenal/sensors/cmd/opensock/commands"

func main() {
	commands.Execute()
}
