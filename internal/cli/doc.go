// Package cli defines the eudicnotes command tree and its flags. Settings
// come from flags, the $HOME/.eudicnotes.yaml config file and EUDICNOTES_*
// environment variables, merged by viper.
package cli
