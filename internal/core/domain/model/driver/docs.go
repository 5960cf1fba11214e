// Package driver models delivery drivers and the name snapshot an order keeps of its driver.
package driver
