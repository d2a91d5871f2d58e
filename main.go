// Command voxsync keeps voxel-asset manifests and the generated registry in
// sync with the on-disk asset tree.
package main

import "github.com/nevereverland/voxsync/cmd"

func main() {
	cmd.Execute()
}
