package fake

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/photodesk/access/types"
)

func TestFakes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "fake backends")
}

var _ = Describe("fake identity provider", func() {
	var (
		p   *IdentityProvider
		ctx = context.Background()
	)

	BeforeEach(func() {
		p = NewIdentityProvider()
		p.Register("jane@example.test", "secret", "sub-jane")
	})

	It("verifies registered credentials and opens a session", func() {
		sess, e := p.Verify(ctx, "jane@example.test", "secret")
		Expect(e).To(Succeed())
		Expect(sess.Subject).To(Equal("sub-jane"))

		got, ok, e := p.CurrentSession(ctx)
		Expect(e).To(Succeed())
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(sess))
	})

	It("rejects a wrong secret without opening a session", func() {
		_, e := p.Verify(ctx, "jane@example.test", "nope")
		Expect(e).NotTo(Succeed())

		_, ok, e := p.CurrentSession(ctx)
		Expect(e).To(Succeed())
		Expect(ok).To(BeFalse())
	})

	It("revokes idempotently", func() {
		_, e := p.Verify(ctx, "jane@example.test", "secret")
		Expect(e).To(Succeed())

		Expect(p.Revoke(ctx, "sub-jane")).To(Succeed())
		Expect(p.Revoke(ctx, "sub-jane")).To(Succeed())

		_, ok, e := p.CurrentSession(ctx)
		Expect(e).To(Succeed())
		Expect(ok).To(BeFalse())
	})

	It("leaves another subject's session alone on revoke", func() {
		p.StartSession("sub-other")
		Expect(p.Revoke(ctx, "sub-jane")).To(Succeed())

		sess, ok, e := p.CurrentSession(ctx)
		Expect(e).To(Succeed())
		Expect(ok).To(BeTrue())
		Expect(sess.Subject).To(Equal("sub-other"))
	})
})

var _ = Describe("fake profile store", func() {
	var (
		s   *ProfileStore
		ctx = context.Background()
	)

	BeforeEach(func() {
		s = NewProfileStore()
	})

	It("reads back a stored role", func() {
		s.SetRole("sub-jane", types.Editor)
		Expect(s.FindRole(ctx, "sub-jane")).To(Equal(types.Editor))
	})

	It("reports a missing profile", func() {
		_, e := s.FindRole(ctx, "sub-ghost")
		Expect(e).To(Equal(types.ErrProfileNotFound))
	})

	It("reports a removed profile as missing", func() {
		s.SetRole("sub-jane", types.Editor)
		s.Remove("sub-jane")

		_, e := s.FindRole(ctx, "sub-jane")
		Expect(e).To(Equal(types.ErrProfileNotFound))
	})
})
