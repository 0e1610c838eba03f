/*
Package utils contains decorators shared by every application:
logging, panic recovery, savepoints and key tagging.
*/
package utils
