package player

import (
	"context"
	"time"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nova/internal/transcript"
)

var _ = ginkgo.Describe("Player", func() {
	var (
		region *BufferRegion
		p      *Player
	)

	ginkgo.BeforeEach(func() {
		region = &BufferRegion{}
		var err error
		p, err = New(transcript.Sequence{
			{Delay: 5 * time.Millisecond, Content: "$ nova run app.wasm"},
			{Delay: 5 * time.Millisecond, Content: "🚀 spawning"},
			{Delay: 5 * time.Millisecond, Content: "✅ done"},
		}, region)
		Expect(err).NotTo(HaveOccurred())
	})

	ginkgo.Context("before it is triggered", func() {
		ginkgo.It("is idle with the cursor at zero", func() {
			Expect(p.State()).To(Equal(Idle))
			Expect(p.Cursor()).To(BeZero())
			Expect(p.Started()).To(BeFalse())
		})

		ginkgo.It("has nothing pending", func() {
			_, ok := p.Next()
			Expect(ok).To(BeFalse())
		})
	})

	ginkgo.Context("while playing", func() {
		ginkgo.BeforeEach(func() {
			Expect(p.Start()).To(BeTrue())
		})

		ginkgo.It("exposes the delay of the line at the cursor", func() {
			d, ok := p.Next()
			Expect(ok).To(BeTrue())
			Expect(d).To(Equal(5 * time.Millisecond))
		})

		ginkgo.It("moves the cursor one line per advance", func() {
			p.Advance()
			Expect(p.Cursor()).To(Equal(1))
			Expect(region.Lines()).To(HaveLen(1))
		})

		ginkgo.It("ignores another start", func() {
			p.Advance()
			Expect(p.Start()).To(BeFalse())
			Expect(p.Cursor()).To(Equal(1))
		})
	})

	ginkgo.Context("when driven to the end", func() {
		ginkgo.It("appends every line exactly once and stops", func(ctx ginkgo.SpecContext) {
			Expect(p.Trigger(ctx)).To(BeTrue())
			Eventually(p.State).WithTimeout(time.Second).Should(Equal(Done))
			Expect(region.Lines()).To(Equal([]string{"$ nova run app.wasm", "🚀 spawning", "✅ done"}))

			Consistently(region.Lines).WithTimeout(30 * time.Millisecond).Should(HaveLen(3))
			Expect(p.Trigger(context.Background())).To(BeFalse())
		}, ginkgo.SpecTimeout(2*time.Second))

		ginkgo.It("scrolls the region after each append", func() {
			Expect(p.Play(context.Background())).To(Succeed())
			Expect(region.Scrolls()).To(Equal(3))
		})
	})
})
