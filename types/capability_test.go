package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/photodesk/access/types"
)

var _ = Describe("capability set", func() {
	It("drops duplicates", func() {
		s := NewCapabilitySet("orders.place", "orders.place", "orders.track")
		Expect(s).To(HaveLen(2))
		Expect(s.Slice()).To(ConsistOf(Capability("orders.place"), Capability("orders.track")))
	})

	It("tests membership", func() {
		s := NewCapabilitySet("orders.place")
		Expect(s.Has("orders.place")).To(BeTrue())
		Expect(s.Has("users.manage")).To(BeFalse())
	})

	It("clones independently", func() {
		s := NewCapabilitySet("orders.place")
		c := s.Clone()
		c.Add("users.manage")

		Expect(s.Has("users.manage")).To(BeFalse())
		Expect(c.Has("users.manage")).To(BeTrue())
	})

	It("may be empty", func() {
		s := NewCapabilitySet()
		Expect(s).To(BeEmpty())
		Expect(s.Has("orders.place")).To(BeFalse())
	})
})
