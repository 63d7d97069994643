package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/photodesk/access/types"
)

var _ = Describe("admission decision", func() {
	It("admits with the resolved role", func() {
		d := Admit(Admin)
		Expect(d.Allowed()).To(BeTrue())
		Expect(d.Role).To(Equal(Admin))
		Expect(d.Revoked).To(BeFalse())
	})

	It("denies without revealing a role", func() {
		d := Deny(ReasonInvalidCredentials, "wrong password")
		Expect(d.Allowed()).To(BeFalse())
		Expect(d.Reason).To(Equal(ReasonInvalidCredentials))
		Expect(d.Message).To(Equal("wrong password"))
		Expect(d.Role).To(BeEmpty())
		Expect(d.Revoked).To(BeFalse())
	})

	It("marks revoking denials", func() {
		d := DenyRevoked(ReasonInsufficientRole, "access denied")
		Expect(d.Allowed()).To(BeFalse())
		Expect(d.Revoked).To(BeTrue())
		Expect(d.Role).To(BeEmpty())
	})

	It("redirects with a target and no reason", func() {
		d := Redirect("/account")
		Expect(d.Allowed()).To(BeFalse())
		Expect(d.Effect).To(Equal(EffectRedirect))
		Expect(d.Target).To(Equal("/account"))
		Expect(d.Reason).To(Equal(ReasonNone))
	})
})
