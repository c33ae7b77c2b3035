package podprovider_test

import (
	"context"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp/podprovider"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("CloudPodProvider", func() {
	var (
		server   *ghttp.Server
		provider podprovider.Provider
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		provider = podprovider.NewCloudPodProvider(
			lagertest.NewTestLogger("test"),
			clock.NewClock(),
			podprovider.CloudPodConfig{
				BaseURL:  server.URL(),
				APIToken: "provider-token",
			},
		)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CreatePod", func() {
		spec := podprovider.PodSpec{
			Name:            "rp-run-1",
			Image:           "registry.example.com/rp:latest",
			GPUPreferences:  []string{"NVIDIA A40", "NVIDIA L40S"},
			StartupCommand:  "echo hello",
			ContainerDiskGB: 40,
			VolumeDiskGB:    500,
		}

		It("falls through the preference list until a type has capacity", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/v1/pods"),
					ghttp.VerifyHeaderKV("Authorization", "Bearer provider-token"),
					ghttp.VerifyJSONRepresenting(map[string]any{
						"name":              "rp-run-1",
						"image":             "registry.example.com/rp:latest",
						"gpu_type":          "NVIDIA A40",
						"gpu_count":         1,
						"startup_command":   "echo hello",
						"container_disk_gb": 40,
						"volume_disk_gb":    500,
					}),
					ghttp.RespondWith(http.StatusServiceUnavailable, `{}`),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/v1/pods"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
						"id":            "pod-1",
						"name":          "rp-run-1",
						"gpu_type":      "NVIDIA L40S",
						"cost_per_hour": 0.99,
					}),
				),
			)

			pod, err := provider.CreatePod(context.Background(), spec)
			Expect(err).ToNot(HaveOccurred())
			Expect(pod).To(Equal(podprovider.Pod{
				ID:          "pod-1",
				Name:        "rp-run-1",
				GPUType:     "NVIDIA L40S",
				CostPerHour: 0.99,
			}))

			// one request per preference; a capacity 503 is never retried
			Expect(server.ReceivedRequests()).To(HaveLen(2))
		})

		It("honors the provider's explicit capacity error code", func() {
			server.AppendHandlers(
				ghttp.RespondWithJSONEncoded(http.StatusBadRequest, map[string]string{
					"code":    "gpu_unavailable",
					"message": "no NVIDIA A40 instances",
				}),
				ghttp.RespondWithJSONEncoded(http.StatusBadRequest, map[string]string{
					"code":    "gpu_unavailable",
					"message": "no NVIDIA L40S instances",
				}),
			)

			_, err := provider.CreatePod(context.Background(), spec)
			Expect(err).To(Equal(podprovider.ErrGPUUnavailable))
		})

		It("stops at the first hard failure", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusUnprocessableEntity, `{"code":"bad_image","message":"image not found"}`),
			)

			_, err := provider.CreatePod(context.Background(), spec)
			Expect(err).To(MatchError(ContainSubstring("status 422")))
			Expect(err).To(MatchError(ContainSubstring("NVIDIA A40")))
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})
	})

	Describe("WaitForPodReady", func() {
		It("polls until the pod runs with a public SSH mapping", func() {
			pending := map[string]any{"id": "pod-1", "desired_status": "CREATED"}
			running := map[string]any{
				"id":             "pod-1",
				"desired_status": "RUNNING",
				"public_ip":      "203.0.113.7",
				"pod_host_id":    "host-1",
				"ports": []map[string]any{
					{"private_port": 8888, "public_port": 30888, "is_ip_public": false},
					{"private_port": 22, "public_port": 22022, "is_ip_public": true},
				},
			}

			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/v1/pods/pod-1"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, pending),
				),
				ghttp.RespondWithJSONEncoded(http.StatusOK, running),
			)

			endpoint, err := provider.WaitForPodReady(context.Background(), "pod-1", 10*time.Millisecond, time.Second)
			Expect(err).ToNot(HaveOccurred())
			Expect(endpoint).To(Equal(podprovider.Endpoint{
				PublicIP:  "203.0.113.7",
				SSHPort:   22022,
				PodHostID: "host-1",
			}))
		})

		It("keeps polling a running pod until its SSH port is mapped", func() {
			unmapped := map[string]any{
				"id":             "pod-1",
				"desired_status": "RUNNING",
				"public_ip":      "203.0.113.7",
			}

			server.AppendHandlers(
				ghttp.RespondWithJSONEncoded(http.StatusOK, unmapped),
				ghttp.RespondWithJSONEncoded(http.StatusOK, unmapped),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
					"id":             "pod-1",
					"desired_status": "RUNNING",
					"public_ip":      "203.0.113.7",
					"pod_host_id":    "host-1",
					"ports": []map[string]any{
						{"private_port": 22, "public_port": 22022, "is_ip_public": true},
					},
				}),
			)

			endpoint, err := provider.WaitForPodReady(context.Background(), "pod-1", 5*time.Millisecond, time.Second)
			Expect(err).ToNot(HaveOccurred())
			Expect(endpoint.SSHPort).To(Equal(22022))
		})

		It("gives up at the deadline", func() {
			server.RouteToHandler("GET", "/v1/pods/pod-1",
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
					"id":             "pod-1",
					"desired_status": "CREATED",
				}),
			)

			_, err := provider.WaitForPodReady(context.Background(), "pod-1", 5*time.Millisecond, 30*time.Millisecond)
			Expect(err).To(MatchError(ContainSubstring("not ready after")))
		})

		It("respects caller cancellation", func() {
			server.RouteToHandler("GET", "/v1/pods/pod-1",
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
					"id":             "pod-1",
					"desired_status": "CREATED",
				}),
			)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := provider.WaitForPodReady(ctx, "pod-1", 5*time.Millisecond, time.Second)
			Expect(err).To(MatchError(ContainSubstring("context canceled")))
		})
	})

	Describe("DeletePod", func() {
		It("releases the pod", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("DELETE", "/v1/pods/pod-1"),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			Expect(provider.DeletePod(context.Background(), "pod-1")).To(Succeed())
		})

		It("maps a 404 to ErrPodNotFound", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusNotFound, nil),
			)

			err := provider.DeletePod(context.Background(), "pod-gone")
			Expect(err).To(Equal(podprovider.ErrPodNotFound))
		})
	})

	Describe("GetBillingSummary", func() {
		It("returns the aggregate once records exist", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/v1/pods/pod-1/billing"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
						"total_amount_usd": 1.25,
						"time_billed_ms":   1800000,
						"records":          []map[string]any{{"amount_usd": 1.25}},
					}),
				),
			)

			summary, err := provider.GetBillingSummary(context.Background(), "pod-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(summary).ToNot(BeNil())
			Expect(summary.AmountUSD).To(Equal(1.25))
			Expect(summary.TimeBilledMS).To(Equal(int64(1800000)))
		})

		It("reports nothing while the provider has no records", func() {
			server.AppendHandlers(
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
					"total_amount_usd": 0,
					"records":          []map[string]any{},
				}),
			)

			summary, err := provider.GetBillingSummary(context.Background(), "pod-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(summary).To(BeNil())
		})

		It("treats an unknown pod as having no records", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusNotFound, nil),
			)

			summary, err := provider.GetBillingSummary(context.Background(), "pod-gone")
			Expect(err).ToNot(HaveOccurred())
			Expect(summary).To(BeNil())
		})
	})
})
