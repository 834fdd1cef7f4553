// Command regcli is a command-line front end whose commands are contributed
// by registry providers.
//
// Usage:
//
//	regcli <group> <command> [arguments] [flags]
//
// Run without arguments for the list of groups, or with a group name for its
// commands. Exit status is 0 on success or help, 2 when the command line is
// rejected, and 1 when a command fails.
package main
