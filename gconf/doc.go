/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single, validated configuration object stored under
the "_c:<package name>" key. The configuration is loaded from the genesis file
"conf" section and can be read by handlers at any later point.
*/
package gconf
