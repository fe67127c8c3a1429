// Package transfer runs the whole send pipeline for one invocation:
// secret, key, pre-flight queries, fee, build, sign, broadcast.
//
// The mnemonic is wiped as soon as the key is derived and the key pair is
// wiped when Transfer returns, whatever the outcome. Request validation
// happens before any network traffic. Nothing is retried; a failure at
// any stage ends the invocation with an error of one of the domain kinds.
package transfer
