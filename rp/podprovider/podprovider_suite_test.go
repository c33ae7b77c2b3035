package podprovider_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPodProvider(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PodProvider Suite")
}
