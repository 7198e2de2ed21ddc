package harness

// Java is the reflection harness for the JVM image. Compiled parameter names
// are unavailable without -parameters, so binding is positional over the
// ordered values of the input mapping; jackson's node types keep document
// order. Jackson jars are pre-staged under /opt/libs inside the image.
const Java = `import java.io.*;
import java.lang.reflect.*;
import java.util.*;
import com.fasterxml.jackson.databind.JsonNode;
import com.fasterxml.jackson.databind.ObjectMapper;
import com.fasterxml.jackson.databind.node.ObjectNode;

class ListNode {
    int val;
    ListNode next;
    ListNode() {}
    ListNode(int val) { this.val = val; }
    ListNode(int val, ListNode next) { this.val = val; this.next = next; }
}

class TreeNode {
    int val;
    TreeNode left;
    TreeNode right;
    TreeNode() {}
    TreeNode(int val) { this.val = val; }
}

class Node {
    public int val;
    public List<Node> neighbors;
    public Node() { this(0); }
    public Node(int val) { this.val = val; this.neighbors = new ArrayList<>(); }
}

__SOURCE_CODE_PLACEHOLDER__

public class Main {

    private static final ObjectMapper MAPPER = new ObjectMapper();

    public static void main(String[] args) {
        try {
            StringBuilder sb = new StringBuilder();
            BufferedReader reader = new BufferedReader(new InputStreamReader(System.in));
            String line;
            while ((line = reader.readLine()) != null) sb.append(line);

            JsonNode payload = MAPPER.readTree(sb.toString());
            String functionName = payload.get("function_name").asText();
            JsonNode input = payload.has("input") ? payload.get("input") : MAPPER.createObjectNode();

            Object target = resolveTarget(functionName);
            Method method = (Method) ((Object[]) target)[0];
            Object receiver = ((Object[]) target)[1];

            Object[] callArgs = bindArguments(method, input);
            Object result = method.invoke(receiver, callArgs);

            ObjectNode out = MAPPER.createObjectNode();
            out.set("result", MAPPER.valueToTree(serialize(result)));
            System.out.println(MAPPER.writeValueAsString(out));
        } catch (InvocationTargetException e) {
            fail(e.getCause() == null ? e.toString() : e.getCause().toString());
        } catch (Exception e) {
            fail(e.toString());
        }
    }

    private static void fail(String message) {
        try {
            ObjectNode out = MAPPER.createObjectNode();
            out.put("error", message);
            System.out.println(MAPPER.writeValueAsString(out));
        } catch (Exception ignored) {
            System.out.println("{\"error\": \"internal harness failure\"}");
        }
        System.exit(1);
    }

    private static Object resolveTarget(String name) throws Exception {
        Class<?> solution;
        try {
            solution = Class.forName("Solution");
        } catch (ClassNotFoundException e) {
            throw new NoSuchMethodException("function '" + name + "' not found");
        }
        for (Method m : solution.getDeclaredMethods()) {
            if (m.getName().equals(name)) {
                m.setAccessible(true);
                Object receiver = Modifier.isStatic(m.getModifiers())
                        ? null
                        : solution.getDeclaredConstructor().newInstance();
                return new Object[]{m, receiver};
            }
        }
        throw new NoSuchMethodException("function '" + name + "' not found");
    }

    private static Object[] bindArguments(Method method, JsonNode input) {
        int cyclePos = input.has("pos") ? input.get("pos").asInt(-1) : -1;
        List<JsonNode> values = new ArrayList<>();
        Iterator<Map.Entry<String, JsonNode>> fields = input.fields();
        while (fields.hasNext()) {
            Map.Entry<String, JsonNode> field = fields.next();
            if (!field.getKey().equals("pos")) values.add(field.getValue());
        }

        Class<?>[] types = method.getParameterTypes();
        if (values.size() < types.length) {
            throw new IllegalArgumentException(
                    "expected " + types.length + " parameters, got " + values.size());
        }

        Object[] args = new Object[types.length];
        for (int i = 0; i < types.length; i++) {
            args[i] = convert(values.get(i), types[i], cyclePos);
        }
        return args;
    }

    private static Object convert(JsonNode value, Class<?> type, int cyclePos) {
        if (type == int.class || type == Integer.class) return value.asInt();
        if (type == long.class || type == Long.class) return value.asLong();
        if (type == double.class || type == Double.class) return value.asDouble();
        if (type == boolean.class || type == Boolean.class) return value.asBoolean();
        if (type == String.class) return value.asText();
        if (type == int[].class) {
            int[] arr = new int[value.size()];
            for (int i = 0; i < value.size(); i++) arr[i] = value.get(i).asInt();
            return arr;
        }
        if (type == int[][].class) {
            int[][] arr = new int[value.size()][];
            for (int i = 0; i < value.size(); i++) {
                JsonNode row = value.get(i);
                arr[i] = new int[row.size()];
                for (int j = 0; j < row.size(); j++) arr[i][j] = row.get(j).asInt();
            }
            return arr;
        }
        if (type == char[][].class) {
            char[][] arr = new char[value.size()][];
            for (int i = 0; i < value.size(); i++) {
                JsonNode row = value.get(i);
                arr[i] = new char[row.size()];
                for (int j = 0; j < row.size(); j++) arr[i][j] = row.get(j).asText().charAt(0);
            }
            return arr;
        }
        if (type == List.class) {
            List<Object> list = new ArrayList<>();
            for (JsonNode el : value) list.add(MAPPER.convertValue(el, Object.class));
            return list;
        }
        if (type == ListNode.class) return buildLinkedList(value, cyclePos);
        if (type == TreeNode.class) return buildTree(value);
        if (type == Node.class) return buildGraph(value);
        throw new IllegalArgumentException("unsupported parameter type: " + type.getName());
    }

    private static ListNode buildLinkedList(JsonNode values, int pos) {
        if (values == null || values.size() == 0) return null;
        List<ListNode> nodes = new ArrayList<>();
        for (JsonNode v : values) nodes.add(new ListNode(v.asInt()));
        for (int i = 0; i < nodes.size() - 1; i++) nodes.get(i).next = nodes.get(i + 1);
        if (pos >= 0 && pos < nodes.size()) nodes.get(nodes.size() - 1).next = nodes.get(pos);
        return nodes.get(0);
    }

    private static List<Integer> linkedListToArray(ListNode head) {
        List<Integer> result = new ArrayList<>();
        Set<ListNode> seen = Collections.newSetFromMap(new IdentityHashMap<>());
        while (head != null && !seen.contains(head)) {
            seen.add(head);
            result.add(head.val);
            head = head.next;
        }
        return result;
    }

    private static TreeNode buildTree(JsonNode values) {
        if (values == null || values.size() == 0 || values.get(0).isNull()) return null;
        TreeNode root = new TreeNode(values.get(0).asInt());
        Deque<TreeNode> queue = new ArrayDeque<>();
        queue.add(root);
        int i = 1;
        while (!queue.isEmpty() && i < values.size()) {
            TreeNode node = queue.poll();
            if (i < values.size() && !values.get(i).isNull()) {
                node.left = new TreeNode(values.get(i).asInt());
                queue.add(node.left);
            }
            i++;
            if (i < values.size() && !values.get(i).isNull()) {
                node.right = new TreeNode(values.get(i).asInt());
                queue.add(node.right);
            }
            i++;
        }
        return root;
    }

    private static List<Integer> treeToArray(TreeNode root) {
        List<Integer> result = new ArrayList<>();
        if (root == null) return result;
        // ArrayDeque rejects nulls, and missing children must serialize as null
        List<TreeNode> frontier = new ArrayList<>();
        frontier.add(root);
        while (!frontier.isEmpty()) {
            TreeNode node = frontier.remove(0);
            if (node == null) {
                result.add(null);
                continue;
            }
            result.add(node.val);
            frontier.add(node.left);
            frontier.add(node.right);
        }
        while (!result.isEmpty() && result.get(result.size() - 1) == null) {
            result.remove(result.size() - 1);
        }
        return result;
    }

    private static Node buildGraph(JsonNode adjList) {
        if (adjList == null || adjList.size() == 0) return null;
        List<Node> nodes = new ArrayList<>();
        for (int i = 0; i < adjList.size(); i++) nodes.add(new Node(i + 1));
        for (int i = 0; i < adjList.size(); i++) {
            for (JsonNode n : adjList.get(i)) {
                int v = n.asInt();
                if (v >= 1 && v <= nodes.size()) nodes.get(i).neighbors.add(nodes.get(v - 1));
            }
        }
        return nodes.get(0);
    }

    private static List<List<Integer>> graphToAdjList(Node node) {
        List<List<Integer>> result = new ArrayList<>();
        if (node == null) return result;
        Set<Node> seen = Collections.newSetFromMap(new IdentityHashMap<>());
        List<Node> ordered = new ArrayList<>();
        Deque<Node> queue = new ArrayDeque<>();
        queue.add(node);
        int maxVal = 0;
        while (!queue.isEmpty()) {
            Node curr = queue.poll();
            if (curr == null || seen.contains(curr)) continue;
            seen.add(curr);
            ordered.add(curr);
            if (curr.val > maxVal) maxVal = curr.val;
            for (Node n : curr.neighbors) {
                if (n != null && !seen.contains(n)) queue.add(n);
            }
        }
        for (int i = 0; i < maxVal; i++) result.add(new ArrayList<>());
        for (Node curr : ordered) {
            List<Integer> row = new ArrayList<>();
            for (Node n : curr.neighbors) if (n != null) row.add(n.val);
            result.set(curr.val - 1, row);
        }
        return result;
    }

    private static Object serialize(Object value) {
        if (value instanceof ListNode) return linkedListToArray((ListNode) value);
        if (value instanceof TreeNode) return treeToArray((TreeNode) value);
        if (value instanceof Node) return graphToAdjList((Node) value);
        return value;
    }
}
`
