// Package staff models restaurant employees: profile, employment status and the
// username allocated when they are provisioned.
package staff
