// Package cmd implements the apismoke CLI commands using Cobra.
//
// Available commands:
//   - run: Send every smoke case to the selected host and check its status
//   - list: Show the cases with their derived method and path
//   - path: Print the path derived from case names
//   - hosts: Show the pro, dev and local hosts after config overrides
//   - init: Write a starter apismoke.yaml
//   - version: Show apismoke version information
package cmd
