package config

// Package config holds application configuration: the desktop preferences kept
// in Fyne's preference store, the viper-backed command line configuration and
// logrus setup shared by both front-ends.
