// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"provis-cli/pkg/provfile"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a new provfile
	initCmd = &cobra.Command{
		Use:   "init [provfile]",
		Short: "Create a new provfile in the current directory",
		Long: `Create a new provfile in the current directory with example steps.

This command generates a starter provisioning plan modeled on a network
lab host setup. Edit the steps to match your own hosts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing provfile")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := provfile.DefaultFileName
	if len(args) > 0 {
		filename = args[0]
	}

	// Check if file exists
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	if err := os.WriteFile(filename, []byte(exampleProvfile), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	stdout := cmd.OutOrStdout()
	absPath, _ := filepath.Abs(filename)
	fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(stdout, "  1. Edit the provfile to describe your steps")
	fmt.Fprintln(stdout, "  2. Run 'provis validate' to check the plan")
	fmt.Fprintln(stdout, "  3. Run 'provis run' to execute it")

	return nil
}

// exampleProvfile is the starter plan written by `provis init`. It sets up
// a network emulation lab host; every step is safe to re-run because the
// preconditions skip work that is already done.
const exampleProvfile = `name: "lab-host"
description: "Provision a network emulation lab host"

steps: [
	{
		name:   "apt-update"
		script: "sudo apt-get update && sudo apt-get -y upgrade"
	},
	{
		name:        "install-mininet"
		description: "Network emulator"
		script:      "sudo apt-get -y install mininet"
		precondition: command_exists: "mn"
	},
	{
		name:        "install-docker"
		description: "Container engine for emulated hosts"
		script:      "curl -fsSL https://get.docker.com | sudo sh"
		precondition: command_exists: "docker"
	},
	{
		name:        "pull-controller-image"
		description: "SDN controller container image"
		script:      "sudo docker pull onosproject/onos:latest"
	},
	{
		name:        "clone-containernet"
		description: "Mininet fork with container support"
		script: """
			git clone https://github.com/containernet/containernet.git ~/containernet
			cd ~/containernet && sudo make install
			"""
		precondition: dir_exists: "~/containernet"
	},
	{
		name:        "install-wmediumd"
		description: "Wireless medium simulator"
		script: """
			sudo apt-get -y install libnl-3-dev libnl-genl-3-dev
			git clone https://github.com/ramonfontes/wmediumd.git ~/wmediumd
			sudo make -C ~/wmediumd install
			"""
		precondition: file_exists: "/usr/bin/wmediumd"
	},
	{
		name:        "install-blockchain-toolchain"
		description: "Smart contract development tools"
		script:      "sudo npm install -g truffle ganache"
		precondition: command_exists: "truffle"
	},
]
`
