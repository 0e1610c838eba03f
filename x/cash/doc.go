/*
Package cash defines a simple implementation of sending coins
between multiple accounts.

Every account holds one balance of the native token under the
address of its owner. Other extensions move funds through the
Controller, which never lets a balance go negative or overflow.
*/
package cash
