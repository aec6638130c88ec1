// Command bvhdomaincli replays a recorded CSV frame sequence through a BVH
// domain tracker session. It is the "outer per-frame driver" spec.md §1
// places outside the core's scope: all it does is wire frames.CSVSource,
// pipeline.Session, and render.NopSink together through the core's public
// interfaces.
package main

import "github.com/kestrelsim/bvhdomain/cmd/bvhdomaincli/cmd"

func main() {
	cmd.Execute()
}
