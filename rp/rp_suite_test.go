package rp_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RP Suite")
}
